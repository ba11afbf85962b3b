package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestOptionsNormalized(t *testing.T) {
	o := Options{SampleRatio: 3}.normalized()
	require.Equal(t, defaultEndpoint, o.Endpoint)
	require.Equal(t, "giftlist", o.ServiceName)
	require.InDelta(t, 1.0, o.SampleRatio, 0)

	require.InDelta(t, 0.0, Options{SampleRatio: -1}.normalized().SampleRatio, 0)
	require.InDelta(t, 0.25, Options{SampleRatio: 0.25}.normalized().SampleRatio, 0)
}

func TestResource_Environment(t *testing.T) {
	res := Resource(Options{ServiceName: "svc", Environment: "staging"})

	env, ok := res.Set().Value(attribute.Key("deployment.environment"))
	require.True(t, ok)
	require.Equal(t, "staging", env.AsString())

	name, ok := res.Set().Value(attribute.Key("service.name"))
	require.True(t, ok)
	require.Equal(t, "svc", name.AsString())

	_, ok = Resource(Options{ServiceName: "svc"}).Set().Value(attribute.Key("deployment.environment"))
	require.False(t, ok)
}

func TestSampler_Description(t *testing.T) {
	require.Contains(t, Sampler(0.5).Description(), "TraceIDRatioBased{0.5}")
}
