package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/upnpkit/scpd/lib"
	"github.com/upnpkit/scpd/pkg/scpd"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	parseURL    string
	parseFile   string
	parseURN    string
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Fetch and parse an SCPD document",
	Long: `Fetch an SCPD document from a URL or read it from a local file, parse it
into the service description model and print its actions and state
variables, including the Go type each state variable maps to.

Examples:
  # Parse from a device URL
  scpd parse --url http://192.168.1.20:8200/scpd/RenderingControl.xml --urn urn:schemas-upnp-org:service:RenderingControl:1

  # Parse from a local file
  scpd parse --file RenderingControl.xml --urn urn:schemas-upnp-org:service:RenderingControl:1 --format json`,
	Run: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseURL, "url", "u", "", "SCPD document URL")
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Local file path")
	parseCmd.Flags().StringVar(&parseURN, "urn", "", "Service type URN to register the description under")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "o", "table", "Output format: table, text, json, yaml")

	parseCmd.MarkFlagRequired("urn")
}

func runParse(cmd *cobra.Command, args []string) {
	logger := log.With().Str("component", "parse").Logger()

	if parseURL == "" && parseFile == "" {
		logger.Error().Msg("Either --url or --file must be provided")
		os.Exit(1)
	}

	if parseURL != "" && parseFile != "" {
		logger.Error().Msg("Cannot provide both --url and --file")
		os.Exit(1)
	}

	format, err := lib.ParseFormatType(parseFormat)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid output format")
		os.Exit(1)
	}

	parser := scpd.NewParser().
		WithTimeout(time.Duration(viper.GetInt("fetch.timeout")) * time.Second).
		WithHeaders(fetchHeaders())

	var description *scpd.ServiceDescription
	if parseURL != "" {
		description, err = parser.ParseFromURL(parseURL, parseURN)
	} else {
		var data []byte
		data, err = os.ReadFile(parseFile)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to read SCPD file")
			os.Exit(1)
		}
		description, err = parser.ParseFromBytes(data, parseURN)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse SCPD document")
		os.Exit(1)
	}

	logger.Info().
		Str("urn", description.URN()).
		Int("state_variables", len(description.StateVariables())).
		Int("actions", len(description.Actions())).
		Msg("Parsed SCPD document")

	if err := printDescription(description, format); err != nil {
		logger.Error().Err(err).Msg("Failed to format output")
		os.Exit(1)
	}
}

// fetchHeaders assembles the extra fetch headers from configuration.
func fetchHeaders() map[string]string {
	headers := viper.GetStringMapString("fetch.headers")
	if headers == nil {
		headers = make(map[string]string)
	}
	if ua := viper.GetString("fetch.user_agent"); ua != "" {
		headers["User-Agent"] = ua
	}
	return headers
}

func printDescription(description *scpd.ServiceDescription, format lib.FormatType) error {
	variables := make([]stateVariableRow, 0, len(description.StateVariables()))
	for i := range description.StateVariables() {
		variables = append(variables, newStateVariableRow(&description.StateVariables()[i]))
	}

	actions := make([]actionRow, 0, len(description.Actions()))
	for i := range description.Actions() {
		actions = append(actions, newActionRow(&description.Actions()[i]))
	}

	variablesOut, err := lib.FormatOutput(variables, format)
	if err != nil {
		return err
	}
	actionsOut, err := lib.FormatOutput(actions, format)
	if err != nil {
		return err
	}

	fmt.Println(variablesOut)
	fmt.Println(actionsOut)
	return nil
}

type stateVariableRow struct {
	Name          string   `json:"name" yaml:"name"`
	DataType      string   `json:"data_type" yaml:"data_type"`
	GoType        string   `json:"go_type" yaml:"go_type"`
	SendEvents    string   `json:"send_events" yaml:"send_events"`
	Multicast     string   `json:"multicast" yaml:"multicast"`
	Optional      bool     `json:"optional" yaml:"optional"`
	DefaultValue  string   `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	AllowedValues []string `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty"`
}

func newStateVariableRow(sv *scpd.StateVariable) stateVariableRow {
	goType, err := sv.GoType()
	if err != nil {
		goType = "(unsupported)"
	}
	defaultValue, _ := sv.DefaultValue()
	return stateVariableRow{
		Name:          sv.Name(),
		DataType:      sv.DataType().String(),
		GoType:        goType,
		SendEvents:    sv.SendEvents().String(),
		Multicast:     sv.Multicast().String(),
		Optional:      sv.Optional(),
		DefaultValue:  defaultValue,
		AllowedValues: sv.AllowedValues(),
	}
}

func (r stateVariableRow) String() string {
	return fmt.Sprintf("%s (%s -> %s)", r.Name, r.DataType, r.GoType)
}

func (r stateVariableRow) TableHeaders() []string {
	return []string{"Name", "Data Type", "Go Type", "Send Events", "Multicast", "Optional", "Default", "Allowed Values"}
}

func (r stateVariableRow) TableRow() []string {
	return []string{
		r.Name,
		r.DataType,
		r.GoType,
		r.SendEvents,
		r.Multicast,
		fmt.Sprintf("%t", r.Optional),
		r.DefaultValue,
		strings.Join(r.AllowedValues, ", "),
	}
}

type actionRow struct {
	Name    string   `json:"name" yaml:"name"`
	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

func newActionRow(action *scpd.Action) actionRow {
	row := actionRow{Name: action.Name()}
	for arg := range action.InputArguments() {
		row.Inputs = append(row.Inputs, arg.Name())
	}
	for arg := range action.OutputArguments() {
		row.Outputs = append(row.Outputs, arg.Name())
	}
	return row
}

func (r actionRow) String() string {
	return fmt.Sprintf("%s(%s) -> (%s)", r.Name, strings.Join(r.Inputs, ", "), strings.Join(r.Outputs, ", "))
}

func (r actionRow) TableHeaders() []string {
	return []string{"Action", "Inputs", "Outputs"}
}

func (r actionRow) TableRow() []string {
	return []string{r.Name, strings.Join(r.Inputs, ", "), strings.Join(r.Outputs, ", ")}
}
