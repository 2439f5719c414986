package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CADMonkey21/pivx-rpc-go/rpc"
)

var callCommand = &cobra.Command{
	Use:   "call <method> [param...]",
	Short: "call a node method and print its result",
	Long: "Each param is parsed as a JSON literal (123, true, null, [..], {..}); " +
		"anything that is not valid JSON is sent as a string.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCommand)
}

func parseParams(args []string) []interface{} {
	params := make([]interface{}, 0, len(args))
	for _, arg := range args {
		var v interface{}
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			v = arg
		}
		params = append(params, v)
	}
	return params
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := cfg.ConnConfig()
	if err != nil {
		return err
	}
	client, err := rpc.NewClient(conn)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	raw, err := client.CallRaw(ctx, args[0], parseParams(args[1:])...)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		out.Reset()
		out.Write(raw)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}
