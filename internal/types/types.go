package types

type Config struct {
	SvnPath  string `json:"svn_path"`
	LogLevel string `json:"log_level"`
}

const (
	DefaultSvnPath  = "svn"
	DefaultLogLevel = "info"
)
