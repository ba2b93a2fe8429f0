// Package error provides structured, coded errors for easyfmt.
//
// Package: error
// Title: easyfmt Error Handling
// Description: Implements a small structured error type with codes, severity,
//              details and the failing operation. The text transformation functions
//              never return errors; this package is used at the integration
//              edges only (configuration loading, pipeline compilation and
//              format spec parsing).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Reduced to the codes used by config, pipeline and render
//
// Usage:
//   import mdwerror "github.com/msto63/easyfmt/foundation/core/error"
//
//   err := mdwerror.New("unknown step").
//     WithCode(mdwerror.CodeInvalidConfig).
//     WithDetail("op", "frobnicate")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
//     // report the configuration problem
//   }
package error
