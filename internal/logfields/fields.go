/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldAuthorityStatus   = "authorityStatus"
	FieldClaimHash         = "claimHash"
	FieldCorrelationToken  = "correlationToken"
	FieldCredentialID      = "credentialID"
	FieldEvent             = "event"
	FieldFlow              = "flow"
	FieldOperation         = "operation"
	FieldRequestID         = "requestID"
	FieldStatus            = "status"
	FieldStoreType         = "storeType"
	FieldUserLogLevel      = "userLogLevel"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.String(FieldAdditionalMessage, value)
}

// WithAuthorityStatus sets the request status reported by the authority.
func WithAuthorityStatus(value string) zap.Field {
	return zap.String(FieldAuthorityStatus, value)
}

// WithClaimHash sets the hashed indexed claim field.
func WithClaimHash(value string) zap.Field {
	return zap.String(FieldClaimHash, value)
}

// WithCorrelationToken sets the correlation token field.
func WithCorrelationToken(value string) zap.Field {
	return zap.String(FieldCorrelationToken, value)
}

// WithCredentialID sets the authority credential ID field.
func WithCredentialID(value string) zap.Field {
	return zap.String(FieldCredentialID, value)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithFlow sets the flow field.
func WithFlow(value string) zap.Field {
	return zap.String(FieldFlow, value)
}

// WithOperation sets the operation field.
func WithOperation(value string) zap.Field {
	return zap.String(FieldOperation, value)
}

// WithRequestID sets the authority request ID field.
func WithRequestID(value string) zap.Field {
	return zap.String(FieldRequestID, value)
}

// WithStatus sets the correlation status field.
func WithStatus(value string) zap.Field {
	return zap.String(FieldStatus, value)
}

// WithStoreType sets the store type field.
func WithStoreType(value string) zap.Field {
	return zap.String(FieldStoreType, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
