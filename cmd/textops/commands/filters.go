package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textops/textops/pkg/errors"
	"github.com/textops/textops/pkg/registry"
	"github.com/textops/textops/pkg/types"
)

// pipeSpec describes a plain stdin→stdout filter command backed by a
// registered operation.
type pipeSpec struct {
	name    string
	use     string
	short   string
	group   string
	maxArgs int
}

func pipeSpecs() []pipeSpec {
	return []pipeSpec{
		{"lower", "lower", MsgLowerShort, "filters", 0},
		{"upper", "upper", MsgUpperShort, "filters", 0},
		{"title", "title", MsgTitleShort, "filters", 0},
		{"trim", "trim [CUTSET]", MsgTrimShort, "filters", 1},
		{"ltrim", "ltrim [CUTSET]", MsgLtrimShort, "filters", 1},
		{"rtrim", "rtrim [CUTSET]", MsgRtrimShort, "filters", 1},
		{"squeeze", "squeeze [CUTSET]", MsgSqueezeShort, "filters", 1},
		{"squeeze-lines", "squeeze-lines", MsgSqueezeLinesShort, "filters", 0},
		{"trim-lines", "trim-lines", MsgTrimLinesShort, "filters", 0},
	}
}

func newPipeCmd(spec pipeSpec) *cobra.Command {
	return &cobra.Command{
		Use:     spec.use,
		Short:   spec.short,
		GroupID: spec.group,
		Args:    cobra.MaximumNArgs(spec.maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			return dispatch(cmd, spec.name, types.Request{Input: input, Args: args})
		},
	}
}

// dispatch resolves an operation from the registry, runs it, and
// writes the result.
func dispatch(cmd *cobra.Command, name string, req types.Request) error {
	op, err := registry.GetOperation(name)
	if err != nil {
		return err
	}

	out, err := op.Filter(req)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), out)
}

// readInput reads the whole of stdin.
func readInput(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileRead, "failed to read stdin")
	}
	return string(data), nil
}

// writeOutput writes a filter result terminated by a single newline.
// Empty results produce no output at all.
func writeOutput(w io.Writer, out string) error {
	if out == "" {
		return nil
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
