package cli

import (
	"fmt"
	"io"

	"autocomplete-srv/pkg/query"

	"github.com/spf13/cobra"
)

// RenderOptions holds flags of the render command.
type RenderOptions struct {
	Pretty bool
	Vars   bool
	Input  string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render the query for one clean request",
		Long: `Read one clean request (JSON or YAML) from a file or stdin and print
the autocomplete query built for it.

With --vars the variable context is printed instead of the query.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			return runRender(rootOpts, opts, arg, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Pretty, "pretty", "p", false, "indent the output")
	cmd.Flags().BoolVar(&opts.Vars, "vars", false, "print the variable context instead of the query")
	cmd.Flags().StringVar(&opts.Input, "input", "", "request encoding (json|yaml), default from the file extension")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, arg string, cmd *cobra.Command) error {
	ctx := cmd.Context()

	format, err := inputFormat(opts.Input, arg)
	if err != nil {
		return err
	}

	in, err := openInput(cmd.InOrStdin(), arg)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	clean, err := decodeRequest(data, format)
	if err != nil {
		return err
	}

	var out any
	if opts.Vars {
		out = rootOpts.uc.Vars(ctx, clean).Export()
	} else {
		q, err := rootOpts.uc.GenerateQuery(ctx, clean)
		if err != nil {
			return err
		}
		out = q
	}

	var b []byte
	if opts.Pretty {
		b, err = query.MarshalIndent(out, "  ")
	} else {
		b, err = query.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
