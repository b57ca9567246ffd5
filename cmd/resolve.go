package cmd

import (
	"log"
	"os"

	"github.com/findy-network/findy-did-resolver/cmds/resolve"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var resolveEnvs = map[string]string{
	"resolver-url": "RESOLVER_URL",
	"timeout":      "TIMEOUT",
}

var resolveDoc = `Resolves a DID with the configured resolver endpoint and prints the
DID Document as JSON. The resolver url is a template where {did} is
replaced with the DID under resolution.

Example
	findy-did-resolver resolve \
		--resolver-url http://localhost:8080/1.0/identifiers/{did} \
		did:key:z6MkpTHR8VNsBxYAAWHut2Geadd9jSwuBV8xRoAnwWsdvktH
`

// resolveCmd represents the resolve subcommand
var resolveCmd = &cobra.Command{
	Use:   "resolve <did>",
	Short: "Command for resolving DIDs with the resolver endpoint",
	Long:  resolveDoc,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		return BindEnvs(resolveEnvs, cmd.Name())
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		rCmd.DID = args[0]
		try.To(rCmd.Validate())
		if !rootFlags.dryRun {
			// if error occurs in the execution, we don't show usage,
			// only the error message.
			cmd.SilenceUsage = true

			try.To1(rCmd.Exec(os.Stdout))
		}
		return nil
	},
}

var rCmd = resolve.Cmd{}

func init() {
	defer err2.Catch(func(err error) {
		log.Println(err)
	})

	flags := resolveCmd.Flags()
	flags.StringVar(&rCmd.ResolverURL, "resolver-url", "",
		flagInfo("resolver endpoint url template with the {did} placeholder",
			resolveCmd.Name(), resolveEnvs["resolver-url"]))
	flags.DurationVar(&rCmd.Timeout, "timeout", 0,
		flagInfo("resolver request timeout",
			resolveCmd.Name(), resolveEnvs["timeout"]))

	rootCmd.AddCommand(resolveCmd)
}
