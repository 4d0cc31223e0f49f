package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kenmoini/unifi-facts/api/controller"
	"github.com/kenmoini/unifi-facts/observability"
)

// defaultQueryName is what query runs when no name is given.
const defaultQueryName = "list_sites"

// paramFlags holds the raw query parameter flag values. Conversion to
// QueryParams checks which ones were actually set.
type paramFlags struct {
	clientMAC   string
	deviceMAC   string
	networkID   string
	wlanID      string
	since       int
	startNum    int
	limitNum    int
	startEpoch  int64
	endEpoch    int64
	createdTime int64
}

// toQueryParams converts the flag values into query parameters. Numeric
// flags only count when explicitly set, so zero stays distinguishable
// from absent.
func (p paramFlags) toQueryParams(flags *pflag.FlagSet) controller.QueryParams {
	out := controller.QueryParams{
		ClientMAC: p.clientMAC,
		DeviceMAC: p.deviceMAC,
		NetworkID: p.networkID,
		WLANID:    p.wlanID,
	}

	if flags.Changed("since") {
		out.Since = controller.Int(p.since)
	}
	if flags.Changed("start-num") {
		out.StartNum = controller.Int(p.startNum)
	}
	if flags.Changed("limit-num") {
		out.LimitNum = controller.Int(p.limitNum)
	}
	if flags.Changed("start-epoch") {
		out.StartEpoch = controller.Int64(p.startEpoch)
	}
	if flags.Changed("end-epoch") {
		out.EndEpoch = controller.Int64(p.endEpoch)
	}
	if flags.Changed("created-time") {
		out.CreatedTime = controller.Int64(p.createdTime)
	}

	return out
}

// newQueryCmd creates the query command.
func newQueryCmd() *cobra.Command {
	var params paramFlags

	cmd := &cobra.Command{
		Use:   "query [name]",
		Short: "Run one catalog query and print the result JSON",
		Long: `Run one named catalog query against the controller and print the
normalized result on stdout as JSON:

  {"changed": false, "failed": false, "status": 200, "data": ...}

Without a name the query defaults to ` + defaultQueryName + `. Failed
queries print the same shape with "failed": true and exit 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultQueryName
			if len(args) == 1 {
				name = args[0]
			}
			return runQuery(cmd, name, params)
		},
	}

	flags := cmd.Flags()

	// Connection settings, also settable via config file and env.
	flags.String("base-url", "", "Controller base URL, e.g. https://192.168.1.1:8443")
	flags.String("username", "", "Controller username")
	flags.String("password", "", "Controller password")
	flags.String("site", "", `Site name for site-scoped queries (default "default")`)
	flags.Bool("insecure", false, "Skip TLS certificate verification (self-signed controllers)")
	flags.Int("timeout", 0, "HTTP timeout in seconds (default 30)")
	flags.Int("rate-limit", 0, "Max requests per minute, -1 to disable (default 300)")

	// Query parameters.
	flags.StringVar(&params.clientMAC, "client-mac", "", "Client MAC address")
	flags.StringVar(&params.deviceMAC, "device-mac", "", "Device MAC address")
	flags.StringVar(&params.networkID, "network-id", "", "Network configuration id")
	flags.StringVar(&params.wlanID, "wlan-id", "", "WLAN configuration id")
	flags.IntVar(&params.since, "since", 0, "Lookback window in hours")
	flags.IntVar(&params.startNum, "start-num", 0, "First event index for paging")
	flags.IntVar(&params.limitNum, "limit-num", 0, "Maximum number of events to return")
	flags.Int64Var(&params.startEpoch, "start-epoch", 0, "Report window start (epoch, unit follows the query)")
	flags.Int64Var(&params.endEpoch, "end-epoch", 0, "Report window end (epoch, unit follows the query)")
	flags.Int64Var(&params.createdTime, "created-time", 0, "Voucher creation time filter (epoch seconds)")

	return cmd
}

func runQuery(cmd *cobra.Command, name string, params paramFlags) error {
	cfg, err := LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	client, err := controller.NewWithConfig(cfg.clientConfig(logger))
	if err != nil {
		return err
	}
	defer client.CloseIdleConnections()

	result, queryErr := client.Query(cmd.Context(), controller.QueryRequest{
		Name:   name,
		Params: params.toQueryParams(cmd.Flags()),
	})
	if result == nil {
		return queryErr
	}

	rendered, err := renderResult(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))

	if result.IsError {
		logger.Error("query failed",
			observability.Field{Key: "query", Value: name},
			observability.Field{Key: "error", Value: queryErr.Error()},
		)
		return errAlreadyReported
	}

	return nil
}
