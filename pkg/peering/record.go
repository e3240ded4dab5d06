package peering

// Record is one peering connection extracted from an export.
// Records are values; nothing in this module mutates one after [Read] builds it.
type Record struct {
	ConnectionID string // pcx-... resource id
	AccountID    string // account the export attributes the connection to

	RequesterVPCID     string
	RequesterAccountID string
	RequesterRegion    string

	AccepterVPCID     string
	AccepterAccountID string
	AccepterRegion    string
}

// IsSelfPeering reports whether both sides name the same VPC.
func (r Record) IsSelfPeering() bool { return r.RequesterVPCID == r.AccepterVPCID }

// IsCrossAccount reports whether the two sides are owned by different accounts.
func (r Record) IsCrossAccount() bool { return r.RequesterAccountID != r.AccepterAccountID }

// IsCrossRegion reports whether the two sides live in different regions.
// Unknown regions never count as a difference.
func (r Record) IsCrossRegion() bool {
	if r.RequesterRegion == "" || r.AccepterRegion == "" {
		return false
	}
	return r.RequesterRegion != r.AccepterRegion
}

// result mirrors one AWS::EC2::VPCPeeringConnection configuration item.
type result struct {
	ResourceID    string        `json:"resourceId"`
	AccountID     string        `json:"accountId"`
	Configuration configuration `json:"configuration"`
}

type configuration struct {
	RequesterVPCInfo vpcInfo `json:"requesterVpcInfo"`
	AccepterVPCInfo  vpcInfo `json:"accepterVpcInfo"`
}

type vpcInfo struct {
	VPCID   string `json:"vpcId"`
	OwnerID string `json:"ownerId"`
	Region  string `json:"region"`
}

func (r result) record() Record {
	req, acc := r.Configuration.RequesterVPCInfo, r.Configuration.AccepterVPCInfo
	return Record{
		ConnectionID:       r.ResourceID,
		AccountID:          r.AccountID,
		RequesterVPCID:     req.VPCID,
		RequesterAccountID: req.OwnerID,
		RequesterRegion:    req.Region,
		AccepterVPCID:      acc.VPCID,
		AccepterAccountID:  acc.OwnerID,
		AccepterRegion:     acc.Region,
	}
}
