/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/verifiedid-relay/cmd/common"
	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/tracing"
	"github.com/trustbloc/verifiedid-relay/pkg/service/requestbuilder"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the vid-rest instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "VID_HOST_URL"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool for calls to the authority." +
		" Possible values [true] [false]. Defaults to false if not set. " +
		commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "VID_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "VID_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for the vid-rest server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "VID_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for the vid-rest server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "VID_TLS_KEY"
)

// request policy params
const (
	authorityDIDFlagName  = "authority-did"
	authorityDIDFlagUsage = "DID of the issuer or verifier the requests are made for. " +
		commonEnvVarUsageText + authorityDIDEnvKey
	authorityDIDEnvKey = "VID_AUTHORITY_DID"

	credentialTypeFlagName  = "credential-type"
	credentialTypeFlagUsage = "Credential type issued and requested. " + commonEnvVarUsageText + credentialTypeEnvKey
	credentialTypeEnvKey    = "VID_CREDENTIAL_TYPE"

	manifestURLFlagName  = "manifest-url"
	manifestURLFlagUsage = "URL of the credential manifest. Required for issuance. " +
		commonEnvVarUsageText + manifestURLEnvKey
	manifestURLEnvKey = "VID_MANIFEST_URL"

	callbackURLFlagName  = "callback-url"
	callbackURLFlagUsage = "Public URL of this service's callback endpoint, e.g. https://relay.example.com/api/callback. " +
		commonEnvVarUsageText + callbackURLEnvKey
	callbackURLEnvKey = "VID_CALLBACK_URL"

	// Linter gosec flags these as "potential hardcoded credentials". They are not, hence the nolint annotations.
	apiKeyFlagName  = "callback-api-key" //nolint: gosec
	apiKeyFlagUsage = "Shared secret the authority echoes in the api-key header of every callback. " +
		commonEnvVarUsageText + apiKeyEnvKey
	apiKeyEnvKey = "VID_CALLBACK_API_KEY" //nolint: gosec

	clientNameFlagName  = "client-name"
	clientNameFlagUsage = "Client name shown in the wallet. " + commonEnvVarUsageText + clientNameEnvKey
	clientNameEnvKey    = "VID_CLIENT_NAME"

	purposeFlagName  = "purpose"
	purposeFlagUsage = "Purpose shown in the wallet for presentations. " + commonEnvVarUsageText + purposeEnvKey
	purposeEnvKey    = "VID_PURPOSE"

	pinLengthFlagName  = "pin-length"
	pinLengthFlagUsage = "Number of PIN digits for issuance on desktop browsers, 0 disables the PIN. " +
		"Default: 4. " + commonEnvVarUsageText + pinLengthEnvKey
	pinLengthEnvKey = "VID_PIN_LENGTH"

	includeQRCodeFlagName  = "include-qr-code"
	includeQRCodeFlagUsage = "Ask the authority to return a QR code. " + commonEnvVarUsageText + includeQRCodeEnvKey
	includeQRCodeEnvKey    = "VID_INCLUDE_QR_CODE"

	includeReceiptFlagName  = "include-receipt"
	includeReceiptFlagUsage = "Ask the authority to include the receipt in presentation callbacks. " +
		commonEnvVarUsageText + includeReceiptEnvKey
	includeReceiptEnvKey = "VID_INCLUDE_RECEIPT"

	allowRevokedFlagName  = "allow-revoked"
	allowRevokedFlagUsage = "Accept revoked credentials in presentations. " + commonEnvVarUsageText + allowRevokedEnvKey
	allowRevokedEnvKey    = "VID_ALLOW_REVOKED"

	validateLinkedDomainFlagName  = "validate-linked-domain"
	validateLinkedDomainFlagUsage = "Require the issuer's linked domain to validate. Default: true. " +
		commonEnvVarUsageText + validateLinkedDomainEnvKey
	validateLinkedDomainEnvKey = "VID_VALIDATE_LINKED_DOMAIN"

	defaultPINLength = 4
)

// authority params
const (
	requestEndpointFlagName  = "request-endpoint"
	requestEndpointFlagUsage = "Request API endpoint. Default: " + defaultRequestEndpoint + ". " +
		commonEnvVarUsageText + requestEndpointEnvKey
	requestEndpointEnvKey  = "VID_REQUEST_ENDPOINT"
	defaultRequestEndpoint = "https://verifiedid.did.msidentity.com/v1.0/verifiableCredentials/createRequest"

	adminEndpointFlagName  = "admin-endpoint"
	adminEndpointFlagUsage = "Admin API credentials endpoint of the revocation contract. " +
		"Revocation is unavailable when not set. " + commonEnvVarUsageText + adminEndpointEnvKey
	adminEndpointEnvKey = "VID_ADMIN_ENDPOINT"

	contractFlagName  = "contract"
	contractFlagUsage = "Contract identifier that salts the index claim hash. " +
		commonEnvVarUsageText + contractEnvKey
	contractEnvKey = "VID_CONTRACT"

	revocationCredentialTypeFlagName  = "revocation-credential-type"
	revocationCredentialTypeFlagUsage = "Credential type whose presented id claim is indexed for revocation. " +
		commonEnvVarUsageText + revocationCredentialTypeEnvKey
	revocationCredentialTypeEnvKey = "VID_REVOCATION_CREDENTIAL_TYPE"

	authorityTimeoutFlagName  = "authority-timeout"
	authorityTimeoutFlagUsage = "Timeout of a single authority call, e.g. 30s. " +
		commonEnvVarUsageText + authorityTimeoutEnvKey
	authorityTimeoutEnvKey  = "VID_AUTHORITY_TIMEOUT"
	defaultAuthorityTimeout = 30 * time.Second

	tokenURLFlagName  = "token-url"
	tokenURLFlagUsage = "Tenant OAuth2 token endpoint. " + commonEnvVarUsageText + tokenURLEnvKey
	tokenURLEnvKey    = "VID_TOKEN_URL"

	clientIDFlagName  = "client-id"
	clientIDFlagUsage = "OAuth2 client id. " + commonEnvVarUsageText + clientIDEnvKey
	clientIDEnvKey    = "VID_CLIENT_ID"

	clientSecretFlagName  = "client-secret" //nolint: gosec
	clientSecretFlagUsage = "OAuth2 client secret. " + commonEnvVarUsageText + clientSecretEnvKey
	clientSecretEnvKey    = "VID_CLIENT_SECRET" //nolint: gosec

	requestScopesFlagName  = "request-scopes"
	requestScopesFlagUsage = "Comma-Separated scopes for the request API. Default: " + defaultRequestScope + ". " +
		commonEnvVarUsageText + requestScopesEnvKey
	requestScopesEnvKey = "VID_REQUEST_SCOPES"
	defaultRequestScope = "3db474b9-6a0c-4840-96ac-1fceb342124f/.default"

	adminScopesFlagName  = "admin-scopes"
	adminScopesFlagUsage = "Comma-Separated scopes for the admin API. Default: " + defaultAdminScope + ". " +
		commonEnvVarUsageText + adminScopesEnvKey
	adminScopesEnvKey = "VID_ADMIN_SCOPES"
	defaultAdminScope = "6a8b4b39-c021-437c-b060-5a14a3fd65f3/.default"
)

// session and operator params
const (
	sessionHashKeyFlagName  = "session-hash-key"
	sessionHashKeyFlagUsage = "Base64 encoded key that authenticates the session cookie, at least 32 bytes. " +
		commonEnvVarUsageText + sessionHashKeyEnvKey
	sessionHashKeyEnvKey = "VID_SESSION_HASH_KEY"

	sessionBlockKeyFlagName  = "session-block-key"
	sessionBlockKeyFlagUsage = "Optional base64 encoded AES key (16, 24 or 32 bytes) that encrypts the session cookie. " +
		commonEnvVarUsageText + sessionBlockKeyEnvKey
	sessionBlockKeyEnvKey = "VID_SESSION_BLOCK_KEY"

	sessionSecureFlagName  = "session-secure"
	sessionSecureFlagUsage = "Mark the session cookie Secure. Default: true. " +
		commonEnvVarUsageText + sessionSecureEnvKey
	sessionSecureEnvKey = "VID_SESSION_SECURE"

	operatorAPIKeyFlagName  = "operator-api-key" //nolint: gosec
	operatorAPIKeyFlagUsage = "When set, the revoke endpoint requires this key in the X-API-Key header. " +
		commonEnvVarUsageText + operatorAPIKeyEnvKey
	operatorAPIKeyEnvKey = "VID_OPERATOR_API_KEY" //nolint: gosec
)

// observability params
const (
	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderFlagUsage = "Metrics provider, only 'prometheus' is supported. Metrics are off when not set. " +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderEnvKey = "VID_METRICS_PROVIDER_NAME"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "Span exporter: JAEGER or STDOUT. Tracing is off when not set. " +
		commonEnvVarUsageText + tracingProviderEnvKey
	tracingProviderEnvKey = "VID_TRACING_PROVIDER"

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameFlagUsage = "Service name reported with spans. Default: " + defaultTracingServiceName + ". " +
		commonEnvVarUsageText + tracingServiceNameEnvKey
	tracingServiceNameEnvKey  = "VID_TRACING_SERVICE_NAME"
	defaultTracingServiceName = "vid-rest"

	prometheusProvider = "prometheus"
)

type startupParameters struct {
	hostURL              string
	logLevel             string
	tlsParameters        *tlsParameters
	dbParameters         *common.DBParameters
	requestPolicy        *requestbuilder.Config
	authorityParameters  *authorityParameters
	sessionParameters    *sessionParameters
	revocationType       string
	operatorAPIKey       string
	metricsProviderName  string
	tracingParams        *tracingParams
	authorityHTTPTimeout time.Duration
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type authorityParameters struct {
	requestEndpoint string
	adminEndpoint   string
	contract        string
	tokenURL        string
	clientID        string
	clientSecret    string
	requestScopes   []string
	adminScopes     []string
}

type sessionParameters struct {
	hashKey  []byte
	blockKey []byte
	secure   bool
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

// nolint: funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	requestPolicy, err := getRequestPolicy(cmd)
	if err != nil {
		return nil, err
	}

	authorityParams, err := getAuthorityParameters(cmd)
	if err != nil {
		return nil, err
	}

	sessionParams, err := getSessionParameters(cmd)
	if err != nil {
		return nil, err
	}

	authorityTimeout, err := getDuration(cmd, authorityTimeoutFlagName, authorityTimeoutEnvKey,
		defaultAuthorityTimeout)
	if err != nil {
		return nil, err
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)
	if metricsProviderName != "" && metricsProviderName != prometheusProvider {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProviderName)
	}

	tracingParameters, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:              hostURL,
		logLevel:             common.LogLevel(cmd),
		tlsParameters:        tlsParams,
		dbParameters:         dbParams,
		requestPolicy:        requestPolicy,
		authorityParameters:  authorityParams,
		sessionParameters:    sessionParams,
		revocationType:       cmdutils.GetUserSetOptionalVarFromString(cmd, revocationCredentialTypeFlagName, revocationCredentialTypeEnvKey),
		operatorAPIKey:       cmdutils.GetUserSetOptionalVarFromString(cmd, operatorAPIKeyFlagName, operatorAPIKeyEnvKey),
		metricsProviderName:  metricsProviderName,
		tracingParams:        tracingParameters,
		authorityHTTPTimeout: authorityTimeout,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := getBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}, nil
}

// nolint: funlen
func getRequestPolicy(cmd *cobra.Command) (*requestbuilder.Config, error) {
	authorityDID, err := cmdutils.GetUserSetVarFromString(cmd, authorityDIDFlagName, authorityDIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	credentialType, err := cmdutils.GetUserSetVarFromString(cmd, credentialTypeFlagName, credentialTypeEnvKey, false)
	if err != nil {
		return nil, err
	}

	callbackURL, err := cmdutils.GetUserSetVarFromString(cmd, callbackURLFlagName, callbackURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	apiKey, err := cmdutils.GetUserSetVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	pinLength := defaultPINLength

	if s := cmdutils.GetUserSetOptionalVarFromString(cmd, pinLengthFlagName, pinLengthEnvKey); s != "" {
		pinLength, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value [%s] for %s: %w", s, pinLengthFlagName, err)
		}
	}

	includeQRCode, err := getBool(cmd, includeQRCodeFlagName, includeQRCodeEnvKey, false)
	if err != nil {
		return nil, err
	}

	includeReceipt, err := getBool(cmd, includeReceiptFlagName, includeReceiptEnvKey, false)
	if err != nil {
		return nil, err
	}

	allowRevoked, err := getBool(cmd, allowRevokedFlagName, allowRevokedEnvKey, false)
	if err != nil {
		return nil, err
	}

	validateLinkedDomain, err := getBool(cmd, validateLinkedDomainFlagName, validateLinkedDomainEnvKey, true)
	if err != nil {
		return nil, err
	}

	cfg := &requestbuilder.Config{
		AuthorityDID:         authorityDID,
		CredentialType:       credentialType,
		ManifestURL:          cmdutils.GetUserSetOptionalVarFromString(cmd, manifestURLFlagName, manifestURLEnvKey),
		CallbackURL:          callbackURL,
		APIKey:               apiKey,
		ClientName:           cmdutils.GetUserSetOptionalVarFromString(cmd, clientNameFlagName, clientNameEnvKey),
		Purpose:              cmdutils.GetUserSetOptionalVarFromString(cmd, purposeFlagName, purposeEnvKey),
		PINLength:            pinLength,
		IncludeQRCode:        includeQRCode,
		IncludeReceipt:       includeReceipt,
		AllowRevoked:         allowRevoked,
		ValidateLinkedDomain: validateLinkedDomain,
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getAuthorityParameters(cmd *cobra.Command) (*authorityParameters, error) {
	tokenURL, err := cmdutils.GetUserSetVarFromString(cmd, tokenURLFlagName, tokenURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	clientID, err := cmdutils.GetUserSetVarFromString(cmd, clientIDFlagName, clientIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	clientSecret, err := cmdutils.GetUserSetVarFromString(cmd, clientSecretFlagName, clientSecretEnvKey, false)
	if err != nil {
		return nil, err
	}

	params := &authorityParameters{
		requestEndpoint: cmdutils.GetUserSetOptionalVarFromString(cmd, requestEndpointFlagName, requestEndpointEnvKey),
		adminEndpoint:   cmdutils.GetUserSetOptionalVarFromString(cmd, adminEndpointFlagName, adminEndpointEnvKey),
		contract:        cmdutils.GetUserSetOptionalVarFromString(cmd, contractFlagName, contractEnvKey),
		tokenURL:        tokenURL,
		clientID:        clientID,
		clientSecret:    clientSecret,
		requestScopes:   cmdutils.GetUserSetOptionalCSVVar(cmd, requestScopesFlagName, requestScopesEnvKey),
		adminScopes:     cmdutils.GetUserSetOptionalCSVVar(cmd, adminScopesFlagName, adminScopesEnvKey),
	}

	if params.requestEndpoint == "" {
		params.requestEndpoint = defaultRequestEndpoint
	}

	if len(params.requestScopes) == 0 {
		params.requestScopes = []string{defaultRequestScope}
	}

	if len(params.adminScopes) == 0 {
		params.adminScopes = []string{defaultAdminScope}
	}

	if params.adminEndpoint != "" && params.contract == "" {
		return nil, fmt.Errorf("%s is required when %s is set", contractFlagName, adminEndpointFlagName)
	}

	return params, nil
}

func getSessionParameters(cmd *cobra.Command) (*sessionParameters, error) {
	hashKeyStr, err := cmdutils.GetUserSetVarFromString(cmd, sessionHashKeyFlagName, sessionHashKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	hashKey, err := base64.StdEncoding.DecodeString(hashKeyStr)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", sessionHashKeyFlagName, err)
	}

	var blockKey []byte

	if s := cmdutils.GetUserSetOptionalVarFromString(cmd, sessionBlockKeyFlagName, sessionBlockKeyEnvKey); s != "" {
		blockKey, err = base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", sessionBlockKeyFlagName, err)
		}
	}

	secure, err := getBool(cmd, sessionSecureFlagName, sessionSecureEnvKey, true)
	if err != nil {
		return nil, err
	}

	return &sessionParameters{
		hashKey:  hashKey,
		blockKey: blockKey,
		secure:   secure,
	}, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExporterSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func getBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if s == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value [%s] for %s: %w", s, flagName, err)
	}

	return v, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	common.LogLevelFlag(startCmd)

	common.Flags(startCmd)

	startCmd.Flags().String(authorityDIDFlagName, "", authorityDIDFlagUsage)
	startCmd.Flags().String(credentialTypeFlagName, "", credentialTypeFlagUsage)
	startCmd.Flags().String(manifestURLFlagName, "", manifestURLFlagUsage)
	startCmd.Flags().String(callbackURLFlagName, "", callbackURLFlagUsage)
	startCmd.Flags().String(apiKeyFlagName, "", apiKeyFlagUsage)
	startCmd.Flags().String(clientNameFlagName, "", clientNameFlagUsage)
	startCmd.Flags().String(purposeFlagName, "", purposeFlagUsage)
	startCmd.Flags().String(pinLengthFlagName, "", pinLengthFlagUsage)
	startCmd.Flags().String(includeQRCodeFlagName, "", includeQRCodeFlagUsage)
	startCmd.Flags().String(includeReceiptFlagName, "", includeReceiptFlagUsage)
	startCmd.Flags().String(allowRevokedFlagName, "", allowRevokedFlagUsage)
	startCmd.Flags().String(validateLinkedDomainFlagName, "", validateLinkedDomainFlagUsage)

	startCmd.Flags().String(requestEndpointFlagName, "", requestEndpointFlagUsage)
	startCmd.Flags().String(adminEndpointFlagName, "", adminEndpointFlagUsage)
	startCmd.Flags().String(contractFlagName, "", contractFlagUsage)
	startCmd.Flags().String(revocationCredentialTypeFlagName, "", revocationCredentialTypeFlagUsage)
	startCmd.Flags().String(authorityTimeoutFlagName, "", authorityTimeoutFlagUsage)
	startCmd.Flags().String(tokenURLFlagName, "", tokenURLFlagUsage)
	startCmd.Flags().String(clientIDFlagName, "", clientIDFlagUsage)
	startCmd.Flags().String(clientSecretFlagName, "", clientSecretFlagUsage)
	startCmd.Flags().StringSlice(requestScopesFlagName, []string{}, requestScopesFlagUsage)
	startCmd.Flags().StringSlice(adminScopesFlagName, []string{}, adminScopesFlagUsage)

	startCmd.Flags().String(sessionHashKeyFlagName, "", sessionHashKeyFlagUsage)
	startCmd.Flags().String(sessionBlockKeyFlagName, "", sessionBlockKeyFlagUsage)
	startCmd.Flags().String(sessionSecureFlagName, "", sessionSecureFlagUsage)
	startCmd.Flags().String(operatorAPIKeyFlagName, "", operatorAPIKeyFlagUsage)

	startCmd.Flags().String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	startCmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
}

// sessionMaxAge matches the lifetime of the entry the cookie points at.
func sessionMaxAge() time.Duration {
	return correlation.EntryTTL
}
