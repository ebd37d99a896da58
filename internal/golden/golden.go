// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden provides a framework for writing file-based golden tests.
//
// The primary entry-point is [Corpus]. Define a new corpus in an ordinary Go
// test body and call [Corpus.Run] to execute it.
//
// Corpora can be "refreshed" to update the golden test corpus with new data
// generated by the test instead of comparing it. To do this, run the test
// with the environment variable that [Corpus].Refresh names set to a file
// glob for all test files to regenerate expectations for.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a test data corpus: table-driven tests where the
// "table" is in the file system.
type Corpus struct {
	// The root of the test data directory, relative to the directory of the
	// file that calls [Corpus.Run].
	Root string

	// An environment variable to check with regards to whether to run in
	// "refresh" mode or not.
	Refresh string

	// The file extensions (without a dot) of files which define a test
	// case, e.g. "yaml".
	Extensions []string

	// Possible outputs of the test, found via Outputs.Extension. A missing
	// output file is treated as expecting empty output.
	Outputs []Output
}

// Output represents one output of a test case.
type Output struct {
	// The extension of the output, appended to the test case's file name:
	// for Extension "txt", the case "foo.yaml" expects "foo.yaml.txt".
	Extension string

	// The comparison function for this output. If nil, defaults to
	// [CompareAndDiff].
	Compare CompareFunc
}

// CompareFunc is a comparison function between strings, used in [Output].
//
// Returns empty string if the strings match, otherwise an error message.
type CompareFunc func(got, want string) string

// Run executes a golden test.
//
// test executes a single test case in the corpus and writes its results to
// the entries of outputs, which has the same length as Corpus.Outputs. It
// should write to outputs as early as possible, so that results computed
// before a panic can still be shown to the user.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	testDir := callerDir(t)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(path string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		for _, extn := range c.Extensions {
			if strings.HasSuffix(path, "."+extn) {
				tests = append(tests, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid refresh glob %q", refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range tests {
		// Normalize the path regardless of platform, to avoid breakages on
		// Windows.
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		testName, _ := filepath.Rel(root, path)
		testName = filepath.ToSlash(testName)

		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", path, err)
			}

			results := make([]string, len(c.Outputs))
			panicked, stack := catch(func() { test(t, name, string(input), results) })
			if panicked != nil {
				// Keep going with whatever outputs the test managed to
				// produce; partial results aid debugging.
				t.Logf("test panicked: %v\n%s", panicked, stack)
				t.Fail()
			}

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				if panicked != nil && results[i] == "" {
					continue
				}

				path := fmt.Sprint(path, ".", output.Extension)
				if refresh {
					c.write(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Logf("golden: error while loading output file %q: %v", path, err)
					t.Fail()
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = CompareAndDiff
				}
				if report := compare(results[i], string(want)); report != "" {
					t.Logf("output mismatch for %q:\n%s", path, report)
					t.Fail()
				}
			}
		})
	}
}

// write updates one golden file during a refresh, deleting it if the test
// produced no output for it.
func (c Corpus) write(t *testing.T, path, result string) {
	if result == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Logf("golden: error while deleting output file %q: %v", path, err)
			t.Fail()
		}
		return
	}
	if err := os.WriteFile(path, []byte(result), 0600); err != nil {
		t.Logf("golden: error while writing output file %q: %v", path, err)
		t.Fail()
	}
}

// CompareAndDiff is a [CompareFunc] that returns a unified diff of the two
// strings if they are not equal.
func CompareAndDiff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("error while diffing: %v", err)
	}
	return diff
}

// callerDir returns the directory of the test file that called into this
// package.
func callerDir(t *testing.T) string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		t.Fatal("golden: could not determine caller directory")
	}
	return filepath.Dir(file)
}

// catch runs f, recovering and returning a panic if one occurs.
func catch(f func()) (panicked any, stack []byte) {
	defer func() {
		if panicked = recover(); panicked != nil {
			stack = debug.Stack()
		}
	}()
	f()
	return nil, nil
}
