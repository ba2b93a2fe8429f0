// Package mapx provides generic map helpers.
//
// Package: mapx
// Title: Extended Map Utilities for Go
// Description: Key listing, shallow copies and merging for any map type,
//              including named types such as log.Fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2025-03-02 v0.2.0: Reduced to Keys, SortedKeys, Clone and Merge
package mapx
