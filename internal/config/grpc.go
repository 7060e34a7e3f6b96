package config

type GRPCConfig struct {
	AcceptorPort int    `yaml:"acceptor-port"`
	AcceptorAddr string `yaml:"acceptor-addr"`
}

// Port is where the bot listens for finished reports.
func (g *GRPCConfig) Port() int {
	return g.AcceptorPort
}

// Addr is where the reporter sends finished reports.
func (g *GRPCConfig) Addr() string {
	return g.AcceptorAddr
}
