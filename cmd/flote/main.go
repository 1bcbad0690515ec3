// Command flote is the CLI front end for the elaborator/simulator:
// "check" validates a source file, "sim" drives it through a stimulus
// script and prints the resulting VCD trace.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/icarogabryel/flote"
	flerrors "github.com/icarogabryel/flote/pkgs/errors"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// glog registers its flags on the standard flag.CommandLine; pflag
	// picks them up via AddGoFlagSet so "-v" gates tracing the way the
	// rest of the codebase expects.
	root := &cobra.Command{
		Use:           "flote",
		Short:         "Elaborate and simulate Flote hardware description sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flag.Parse()
		},
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(newCheckCmd(), newSimCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Elaborate a source file and report success or the first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			glog.V(1).Infof("check: elaborating %s", path)

			tb, err := flote.ElaborateFile(path)
			if err != nil {
				return renderError(err, path)
			}

			fmt.Println("ok")
			glog.V(2).Infof("check: %d buses elaborated", len(tb.Component.Buses))
			return nil
		},
	}
}

func newSimCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "sim <file> <script>",
		Short: "Elaborate a source file and run a stimulus script against it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, scriptPath := args[0], args[1]

			tb, err := flote.ElaborateFile(sourcePath)
			if err != nil {
				return renderError(err, sourcePath)
			}

			script, err := os.ReadFile(scriptPath)
			if err != nil {
				return fmt.Errorf("reading script %s: %w", scriptPath, err)
			}

			if err := runScript(tb, string(script)); err != nil {
				return renderError(err, scriptPath)
			}

			vcdText := tb.DumpVCD()
			if outPath == "" {
				fmt.Print(vcdText)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(vcdText), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			glog.V(1).Infof("sim: wrote trace to %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the VCD trace here instead of stdout")
	return cmd
}

func renderError(err error, source string) error {
	if fe, ok := err.(*flerrors.FloteError); ok {
		src, readErr := os.ReadFile(source)
		if readErr == nil {
			return fmt.Errorf("%s", fe.WithSnippet(string(src)))
		}
	}
	return err
}
