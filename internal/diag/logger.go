// SPDX-License-Identifier: MIT

package diag

import (
	"flag"
	"io"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// Logging owns the klog flag set registered on a command's pflag set.
type Logging struct {
	goflags *flag.FlagSet
	flags   *pflag.FlagSet
}

// NewLogging registers klog's flags (-v, -vmodule, -logtostderr, ...) on fs.
func NewLogging(fs *pflag.FlagSet) *Logging {
	gfs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(gfs)
	fs.AddGoFlagSet(gfs)
	return &Logging{goflags: gfs, flags: fs}
}

// SetVerbosity applies v unless -v was given on the command line.
func (l *Logging) SetVerbosity(v int) error {
	if f := l.flags.Lookup("v"); f != nil && f.Changed {
		return nil
	}
	return l.goflags.Set("v", strconv.Itoa(v))
}

// Redirect sends all klog output to w instead of the process stderr.
func (l *Logging) Redirect(w io.Writer) {
	klog.LogToStderr(false)
	klog.SetOutput(w)
}

// Flush writes buffered log entries.
func (l *Logging) Flush() { klog.Flush() }

// NewLogger returns the run logger: klog backed, named "fesdiff", carrying
// the run correlation id.
func NewLogger(runID string) logr.Logger {
	return klog.Background().WithName("fesdiff").WithValues("run", runID)
}
