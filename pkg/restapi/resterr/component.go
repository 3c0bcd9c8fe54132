/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	RequestBuilderComponent   Component = "verifiedid.request-builder"
	CallbackComponent         Component = "verifiedid.callback"
	StatusComponent           Component = "verifiedid.status"
	RevocationComponent       Component = "verifiedid.revocation"
	AuthorityClientComponent  Component = "authority-client"
	CorrelationStoreComponent Component = "correlation-store"
	TokenAcquirerComponent    Component = "token-acquirer"
)
