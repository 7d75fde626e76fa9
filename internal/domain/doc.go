// Package domain contains the core model for slope: points, the slope sum type,
// derived lines and the chart description handed to renderers.
//
// The domain is UI- and rendering-agnostic: it does not depend on YAML parsing,
// terminal libraries, or plotting backends. Infra/adapters map into/from these types.
package domain
