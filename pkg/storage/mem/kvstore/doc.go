/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package kvstore is an in-process key/value store with per-entry expiry.
package kvstore
