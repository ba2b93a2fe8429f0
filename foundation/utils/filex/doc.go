// Package filex provides file existence checks and text file reading.
//
// Package: filex
// Title: Extended File Operations for Go
// Description: Helpers shared by configuration discovery (IsFile) and the
//              command line --input flag (ReadString). Errors wrap the
//              underlying os error and name the path.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-03-02 v0.2.0: Trimmed to existence checks and whole-file reads
package filex
