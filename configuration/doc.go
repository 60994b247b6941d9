// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - daemon configuration
//
// the configuration file is a Lua script whose last returned table is
// mapped onto the Configuration structure; running a script allows
// computed values and local overrides without a separate template
// language
package configuration
