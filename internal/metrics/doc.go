// Package metrics records tag build metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never need nil checks:
//
//	svc := &build.Service{Recorder: metrics.NoopRecorder{}}
//
// To collect metrics, inject a PrometheusRecorder bound to a registry and
// dump the registry with WriteText once the build has finished:
//
//	reg := prom.NewRegistry()
//	svc := &build.Service{Recorder: metrics.NewPrometheusRecorder(reg)}
//	// ... run builds ...
//	_ = metrics.WriteText(os.Stdout, reg)
package metrics
