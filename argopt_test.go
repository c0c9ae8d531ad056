package argopt_test

import (
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/google/go-cmp/cmp"

	"github.com/tmont/argopt"
)

type buildArgs struct {
	Verbose bool     `opt:"flag" alias:"v" desc:"Enable verbose output"`
	Trace   bool     `opt:"complex" aux:"TraceFile" value:"PATH" desc:"Write a trace"`
	Workers int      `alias:"j" value:"N" desc:"Number of parallel workers"`
	Tags    []string `delim:"," value:"TAGS" desc:"Comma-separated build tags"`
	Targets []string `opt:"collect" desc:"Build targets"`

	TraceFile string `opt:"exclude"`
}

func TestNew_EndToEnd(t *testing.T) {
	args := []string{"-v", "--Trace+=build.log", "--workers", "4", "--Tags=dev,fast", "cmd/app", "cmd/tool"}

	target, res, err := argopt.New[buildArgs](args, argopt.Unix)
	vital.Nil(t, err)
	assert.True(t, res.Valid())

	assert.True(t, target.Verbose)
	assert.True(t, target.Trace)
	assert.Equal(t, target.TraceFile, "build.log")
	assert.Equal(t, target.Workers, 4)
	assert.Equal(t, len(target.Tags), 2)
	assert.Equal(t, target.Tags[1], "fast")
	assert.Equal(t, len(target.Targets), 2)
	assert.Equal(t, target.Targets[0], "cmd/app")
}

func TestNew_Deterministic(t *testing.T) {
	args := []string{"--workers", "bad", "-v", "stray"}

	first, res1, err := argopt.New[buildArgs](args, argopt.Unix)
	vital.Nil(t, err)
	second, res2, err := argopt.New[buildArgs](args, argopt.Unix)
	vital.Nil(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("contracts differ between runs (-first +second):\n%s", diff)
	}
	assert.Equal(t, res1.Valid(), res2.Valid())
	assert.Equal(t, len(res1.Errors), len(res2.Errors))
	if diff := cmp.Diff(res1.Leftover, res2.Leftover); diff != "" {
		t.Errorf("leftovers differ between runs (-first +second):\n%s", diff)
	}
}

func TestParse_IntoCallerInstance(t *testing.T) {
	target := buildArgs{Workers: 2}

	res, err := argopt.Parse(&target, []string{"--Tags", "a,b"}, argopt.Unix)
	vital.Nil(t, err)
	assert.True(t, res.Valid())
	// Untouched fields keep their prior values.
	assert.Equal(t, target.Workers, 2)
	assert.Equal(t, len(target.Tags), 2)
}

func TestDescribe_UsesContractMetadata(t *testing.T) {
	target := buildArgs{}

	text, err := argopt.Describe(&target, "build", 100, argopt.Unix)
	vital.Nil(t, err)
	assert.StringContains(t, text, "build ")
	assert.StringContains(t, text, "ARGUMENTS")
	assert.StringContains(t, text, "Targets")
	assert.StringContains(t, text, "OPTIONS")
	assert.StringContains(t, text, "--Trace[+|-]=PATH")
	assert.StringContains(t, text, " --j")
	assert.StringContains(t, text, "Number of parallel workers")
}
