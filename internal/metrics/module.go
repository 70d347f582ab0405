package metrics

import "go.uber.org/fx"

// Module wires lifecycle metrics for dependency injection.
var Module = fx.Provide(New)
