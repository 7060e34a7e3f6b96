package config

type JaegerConfig struct {
	Agent   string `yaml:"agent"`
	Service string `yaml:"service-name"`
}

func (j *JaegerConfig) AgentHostPort() string {
	return j.Agent
}

func (j *JaegerConfig) ServiceName() string {
	return j.Service
}
