package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/logger"
)

type config interface {
	AgentHostPort() string
	ServiceName() string
}

// Init installs the global tracer. Without an agent address the tracer is
// a no-op, so spans cost nothing.
func Init(cfg config, fallbackName string) (io.Closer, error) {
	name := cfg.ServiceName()
	if name == "" {
		name = fallbackName
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: name,
		Disabled:    cfg.AgentHostPort() == "",
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	closer, err := jcfg.InitGlobalTracer(name)
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	logger.Info("tracing initialized", zap.String("service", name), zap.Bool("disabled", jcfg.Disabled))
	return closer, nil
}
