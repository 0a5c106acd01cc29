package types

// ConfigFileEnv names the environment variable pointing at the config file.
const ConfigFileEnv = "INSTANCE_COUNT_CONFIG"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile    string   `json:"profile" yaml:"profile" toml:"profile"`
	Region     string   `json:"region" yaml:"region" toml:"region"`
	Protocol   string   `json:"protocol" yaml:"protocol" toml:"protocol"`
	OutputFile string   `json:"output_file" yaml:"output_file" toml:"output_file"`
	Families   []string `json:"families" yaml:"families" toml:"families"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
