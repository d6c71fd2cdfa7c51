// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_SupportedTypes(t *testing.T) {
	t.Parallel()

	var params struct {
		Name     string        `flag:"name,n" desc:"a string" default:"anvil"`
		Verbose  bool          `flag:"verbose" desc:"a bool" default:"true"`
		Count    int           `flag:"count" desc:"an int" default:"3"`
		Wait     time.Duration `flag:"wait" desc:"a duration" default:"2s"`
		Includes []string      `flag:"include" desc:"a string slice" default:"a,b"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	// Defaults applied without parsing anything.
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Name != "anvil" || !params.Verbose || params.Count != 3 ||
		params.Wait != 2*time.Second || len(params.Includes) != 2 {
		t.Errorf("defaults not applied: %+v", params)
	}

	// Shorthand binding works.
	if err := flagSet.Parse([]string{"-n", "hammer", "--count=7"}); err != nil {
		t.Fatalf("Parse with values: %v", err)
	}
	if params.Name != "hammer" {
		t.Errorf("Name = %q, want %q", params.Name, "hammer")
	}
	if params.Count != 7 {
		t.Errorf("Count = %d, want 7", params.Count)
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	t.Parallel()

	var params struct {
		JSONOutput
		Dir string `flag:"dir" desc:"project directory" default:"."`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--json"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.OutputJSON {
		t.Error("--json did not set the embedded JSONOutput field")
	}
}

func TestBindFlags_RejectsNonStructPointer(t *testing.T) {
	t.Parallel()

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(42, flagSet); err == nil {
		t.Fatal("expected error for non-pointer params")
	}
	var notStruct int
	if err := BindFlags(&notStruct, flagSet); err == nil {
		t.Fatal("expected error for pointer to non-struct")
	}
}

func TestBindFlags_UnsupportedFieldType(t *testing.T) {
	t.Parallel()

	var params struct {
		Weights map[string]int `flag:"weights" desc:"unsupported"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err == nil {
		t.Fatal("expected error for unsupported field type")
	}
}

func TestEmitJSON_DisabledReturnsNotDone(t *testing.T) {
	t.Parallel()

	var output JSONOutput
	done, err := output.EmitJSON([]string{"x"})
	if err != nil {
		t.Fatalf("EmitJSON: %v", err)
	}
	if done {
		t.Error("EmitJSON reported done with --json unset")
	}
}
