package types

import "time"

// MutualTlsAuthentication is the truststore state of a DomainName.
type MutualTlsAuthentication struct {
	TruststoreUri      *string  `json:"truststoreUri,omitempty"`
	TruststoreVersion  *string  `json:"truststoreVersion,omitempty"`
	TruststoreWarnings []string `json:"truststoreWarnings,omitempty"`
}

// SetTruststoreUri sets the TruststoreUri field's value.
func (s *MutualTlsAuthentication) SetTruststoreUri(v string) *MutualTlsAuthentication {
	s.TruststoreUri = &v
	return s
}

// SetTruststoreVersion sets the TruststoreVersion field's value.
func (s *MutualTlsAuthentication) SetTruststoreVersion(v string) *MutualTlsAuthentication {
	s.TruststoreVersion = &v
	return s
}

// SetTruststoreWarnings replaces the TruststoreWarnings list. A nil list clears the field.
func (s *MutualTlsAuthentication) SetTruststoreWarnings(v []string) *MutualTlsAuthentication {
	s.TruststoreWarnings = copyList(v)
	return s
}

// AddTruststoreWarnings appends warnings, creating the list if it is absent.
func (s *MutualTlsAuthentication) AddTruststoreWarnings(v ...string) *MutualTlsAuthentication {
	if s.TruststoreWarnings == nil {
		s.TruststoreWarnings = make([]string, 0, len(v))
	}
	s.TruststoreWarnings = append(s.TruststoreWarnings, v...)
	return s
}

func (s *MutualTlsAuthentication) String() string {
	return newFieldWriter().
		add("truststoreUri", s.TruststoreUri).
		add("truststoreVersion", s.TruststoreVersion).
		add("truststoreWarnings", s.TruststoreWarnings).
		String()
}

func (s *MutualTlsAuthentication) Equal(o *MutualTlsAuthentication) bool {
	return equalRecords(s, o)
}

func (s *MutualTlsAuthentication) Hash() uint64 { return hashRecord(s) }

// MutualTlsAuthenticationInput enables mutual TLS on a new DomainName.
type MutualTlsAuthenticationInput struct {
	// TruststoreUri is an s3://bucket/key URI of a PEM bundle.
	TruststoreUri     *string `json:"truststoreUri,omitempty"`
	TruststoreVersion *string `json:"truststoreVersion,omitempty"`
}

// SetTruststoreUri sets the TruststoreUri field's value.
func (s *MutualTlsAuthenticationInput) SetTruststoreUri(v string) *MutualTlsAuthenticationInput {
	s.TruststoreUri = &v
	return s
}

// SetTruststoreVersion sets the TruststoreVersion field's value.
func (s *MutualTlsAuthenticationInput) SetTruststoreVersion(v string) *MutualTlsAuthenticationInput {
	s.TruststoreVersion = &v
	return s
}

func (s *MutualTlsAuthenticationInput) String() string {
	return newFieldWriter().
		add("truststoreUri", s.TruststoreUri).
		add("truststoreVersion", s.TruststoreVersion).
		String()
}

func (s *MutualTlsAuthenticationInput) Equal(o *MutualTlsAuthenticationInput) bool {
	return equalRecords(s, o)
}

func (s *MutualTlsAuthenticationInput) Hash() uint64 { return hashRecord(s) }

// CreateDomainNameRequest registers a custom domain name. Edge domains take
// a certificate in us-east-1, regional domains one in the API's region.
type CreateDomainNameRequest struct {
	DomainName *string `json:"domainName,omitempty"`

	CertificateName       *string `json:"certificateName,omitempty"`
	CertificateBody       *string `json:"certificateBody,omitempty"`
	CertificatePrivateKey *string `json:"certificatePrivateKey,omitempty"`
	CertificateChain      *string `json:"certificateChain,omitempty"`
	CertificateArn        *string `json:"certificateArn,omitempty"`

	RegionalCertificateName *string `json:"regionalCertificateName,omitempty"`
	RegionalCertificateArn  *string `json:"regionalCertificateArn,omitempty"`

	EndpointConfiguration *EndpointConfiguration `json:"endpointConfiguration,omitempty"`
	Tags                  map[string]string      `json:"tags,omitempty"`

	// SecurityPolicy is TLS_1_0 or TLS_1_2.
	SecurityPolicy *string `json:"securityPolicy,omitempty"`

	MutualTlsAuthentication *MutualTlsAuthenticationInput `json:"mutualTlsAuthentication,omitempty"`

	OwnershipVerificationCertificateArn *string `json:"ownershipVerificationCertificateArn,omitempty"`
}

// SetDomainName sets the DomainName field's value.
func (s *CreateDomainNameRequest) SetDomainName(v string) *CreateDomainNameRequest {
	s.DomainName = &v
	return s
}

// SetCertificateName sets the CertificateName field's value.
func (s *CreateDomainNameRequest) SetCertificateName(v string) *CreateDomainNameRequest {
	s.CertificateName = &v
	return s
}

// SetCertificateBody sets the CertificateBody field's value.
func (s *CreateDomainNameRequest) SetCertificateBody(v string) *CreateDomainNameRequest {
	s.CertificateBody = &v
	return s
}

// SetCertificatePrivateKey sets the CertificatePrivateKey field's value.
func (s *CreateDomainNameRequest) SetCertificatePrivateKey(v string) *CreateDomainNameRequest {
	s.CertificatePrivateKey = &v
	return s
}

// SetCertificateChain sets the CertificateChain field's value.
func (s *CreateDomainNameRequest) SetCertificateChain(v string) *CreateDomainNameRequest {
	s.CertificateChain = &v
	return s
}

// SetCertificateArn sets the CertificateArn field's value.
func (s *CreateDomainNameRequest) SetCertificateArn(v string) *CreateDomainNameRequest {
	s.CertificateArn = &v
	return s
}

// SetRegionalCertificateName sets the RegionalCertificateName field's value.
func (s *CreateDomainNameRequest) SetRegionalCertificateName(v string) *CreateDomainNameRequest {
	s.RegionalCertificateName = &v
	return s
}

// SetRegionalCertificateArn sets the RegionalCertificateArn field's value.
func (s *CreateDomainNameRequest) SetRegionalCertificateArn(v string) *CreateDomainNameRequest {
	s.RegionalCertificateArn = &v
	return s
}

// SetEndpointConfiguration sets the EndpointConfiguration field's value.
func (s *CreateDomainNameRequest) SetEndpointConfiguration(v *EndpointConfiguration) *CreateDomainNameRequest {
	s.EndpointConfiguration = v
	return s
}

// SetTags replaces the Tags map.
func (s *CreateDomainNameRequest) SetTags(v map[string]string) *CreateDomainNameRequest {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *CreateDomainNameRequest) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *CreateDomainNameRequest) ClearTagsEntries() *CreateDomainNameRequest {
	s.Tags = nil
	return s
}

// SetSecurityPolicy sets the SecurityPolicy field's value.
func (s *CreateDomainNameRequest) SetSecurityPolicy(v SecurityPolicy) *CreateDomainNameRequest {
	policy := string(v)
	s.SecurityPolicy = &policy
	return s
}

// SetMutualTlsAuthentication sets the MutualTlsAuthentication field's value.
func (s *CreateDomainNameRequest) SetMutualTlsAuthentication(v *MutualTlsAuthenticationInput) *CreateDomainNameRequest {
	s.MutualTlsAuthentication = v
	return s
}

// SetOwnershipVerificationCertificateArn sets the OwnershipVerificationCertificateArn field's value.
func (s *CreateDomainNameRequest) SetOwnershipVerificationCertificateArn(v string) *CreateDomainNameRequest {
	s.OwnershipVerificationCertificateArn = &v
	return s
}

// String omits the private key.
func (s *CreateDomainNameRequest) String() string {
	w := newFieldWriter().
		add("domainName", s.DomainName).
		add("certificateName", s.CertificateName).
		add("certificateBody", s.CertificateBody)
	if s.CertificatePrivateKey != nil {
		w.add("certificatePrivateKey", "***")
	}
	return w.
		add("certificateChain", s.CertificateChain).
		add("certificateArn", s.CertificateArn).
		add("regionalCertificateName", s.RegionalCertificateName).
		add("regionalCertificateArn", s.RegionalCertificateArn).
		add("endpointConfiguration", s.EndpointConfiguration).
		add("tags", s.Tags).
		add("securityPolicy", s.SecurityPolicy).
		add("mutualTlsAuthentication", s.MutualTlsAuthentication).
		add("ownershipVerificationCertificateArn", s.OwnershipVerificationCertificateArn).
		String()
}

func (s *CreateDomainNameRequest) Equal(o *CreateDomainNameRequest) bool {
	return equalRecords(s, o)
}

func (s *CreateDomainNameRequest) Hash() uint64 { return hashRecord(s) }

// DomainName is a custom domain name as returned by the service.
type DomainName struct {
	DomainName            *string    `json:"domainName,omitempty"`
	CertificateName       *string    `json:"certificateName,omitempty"`
	CertificateArn        *string    `json:"certificateArn,omitempty"`
	CertificateUploadDate *time.Time `json:"certificateUploadDate,omitempty"`

	RegionalDomainName      *string `json:"regionalDomainName,omitempty"`
	RegionalHostedZoneId    *string `json:"regionalHostedZoneId,omitempty"`
	RegionalCertificateName *string `json:"regionalCertificateName,omitempty"`
	RegionalCertificateArn  *string `json:"regionalCertificateArn,omitempty"`

	DistributionDomainName   *string `json:"distributionDomainName,omitempty"`
	DistributionHostedZoneId *string `json:"distributionHostedZoneId,omitempty"`

	EndpointConfiguration *EndpointConfiguration `json:"endpointConfiguration,omitempty"`

	// DomainNameStatus is one of DomainNameStatus.
	DomainNameStatus        *string `json:"domainNameStatus,omitempty"`
	DomainNameStatusMessage *string `json:"domainNameStatusMessage,omitempty"`

	SecurityPolicy *string           `json:"securityPolicy,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`

	MutualTlsAuthentication *MutualTlsAuthentication `json:"mutualTlsAuthentication,omitempty"`

	OwnershipVerificationCertificateArn *string `json:"ownershipVerificationCertificateArn,omitempty"`
}

// CreateDomainNameResult is the DomainName returned by CreateDomainName.
type CreateDomainNameResult = DomainName

// SetDomainName sets the DomainName field's value.
func (s *DomainName) SetDomainName(v string) *DomainName {
	s.DomainName = &v
	return s
}

// SetCertificateName sets the CertificateName field's value.
func (s *DomainName) SetCertificateName(v string) *DomainName {
	s.CertificateName = &v
	return s
}

// SetCertificateArn sets the CertificateArn field's value.
func (s *DomainName) SetCertificateArn(v string) *DomainName {
	s.CertificateArn = &v
	return s
}

// SetCertificateUploadDate sets the CertificateUploadDate field's value.
func (s *DomainName) SetCertificateUploadDate(v time.Time) *DomainName {
	s.CertificateUploadDate = &v
	return s
}

// SetRegionalDomainName sets the RegionalDomainName field's value.
func (s *DomainName) SetRegionalDomainName(v string) *DomainName {
	s.RegionalDomainName = &v
	return s
}

// SetRegionalHostedZoneId sets the RegionalHostedZoneId field's value.
func (s *DomainName) SetRegionalHostedZoneId(v string) *DomainName {
	s.RegionalHostedZoneId = &v
	return s
}

// SetRegionalCertificateName sets the RegionalCertificateName field's value.
func (s *DomainName) SetRegionalCertificateName(v string) *DomainName {
	s.RegionalCertificateName = &v
	return s
}

// SetRegionalCertificateArn sets the RegionalCertificateArn field's value.
func (s *DomainName) SetRegionalCertificateArn(v string) *DomainName {
	s.RegionalCertificateArn = &v
	return s
}

// SetDistributionDomainName sets the DistributionDomainName field's value.
func (s *DomainName) SetDistributionDomainName(v string) *DomainName {
	s.DistributionDomainName = &v
	return s
}

// SetDistributionHostedZoneId sets the DistributionHostedZoneId field's value.
func (s *DomainName) SetDistributionHostedZoneId(v string) *DomainName {
	s.DistributionHostedZoneId = &v
	return s
}

// SetEndpointConfiguration sets the EndpointConfiguration field's value.
func (s *DomainName) SetEndpointConfiguration(v *EndpointConfiguration) *DomainName {
	s.EndpointConfiguration = v
	return s
}

// SetDomainNameStatus sets the DomainNameStatus field's value.
func (s *DomainName) SetDomainNameStatus(v DomainNameStatus) *DomainName {
	status := string(v)
	s.DomainNameStatus = &status
	return s
}

// SetDomainNameStatusMessage sets the DomainNameStatusMessage field's value.
func (s *DomainName) SetDomainNameStatusMessage(v string) *DomainName {
	s.DomainNameStatusMessage = &v
	return s
}

// SetSecurityPolicy sets the SecurityPolicy field's value.
func (s *DomainName) SetSecurityPolicy(v SecurityPolicy) *DomainName {
	policy := string(v)
	s.SecurityPolicy = &policy
	return s
}

// SetTags replaces the Tags map.
func (s *DomainName) SetTags(v map[string]string) *DomainName {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *DomainName) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *DomainName) ClearTagsEntries() *DomainName {
	s.Tags = nil
	return s
}

// SetMutualTlsAuthentication sets the MutualTlsAuthentication field's value.
func (s *DomainName) SetMutualTlsAuthentication(v *MutualTlsAuthentication) *DomainName {
	s.MutualTlsAuthentication = v
	return s
}

// SetOwnershipVerificationCertificateArn sets the OwnershipVerificationCertificateArn field's value.
func (s *DomainName) SetOwnershipVerificationCertificateArn(v string) *DomainName {
	s.OwnershipVerificationCertificateArn = &v
	return s
}

func (s *DomainName) String() string {
	return newFieldWriter().
		add("domainName", s.DomainName).
		add("certificateName", s.CertificateName).
		add("certificateArn", s.CertificateArn).
		add("certificateUploadDate", s.CertificateUploadDate).
		add("regionalDomainName", s.RegionalDomainName).
		add("regionalHostedZoneId", s.RegionalHostedZoneId).
		add("regionalCertificateName", s.RegionalCertificateName).
		add("regionalCertificateArn", s.RegionalCertificateArn).
		add("distributionDomainName", s.DistributionDomainName).
		add("distributionHostedZoneId", s.DistributionHostedZoneId).
		add("endpointConfiguration", s.EndpointConfiguration).
		add("domainNameStatus", s.DomainNameStatus).
		add("domainNameStatusMessage", s.DomainNameStatusMessage).
		add("securityPolicy", s.SecurityPolicy).
		add("tags", s.Tags).
		add("mutualTlsAuthentication", s.MutualTlsAuthentication).
		add("ownershipVerificationCertificateArn", s.OwnershipVerificationCertificateArn).
		String()
}

func (s *DomainName) Equal(o *DomainName) bool { return equalRecords(s, o) }

func (s *DomainName) Hash() uint64 { return hashRecord(s) }
