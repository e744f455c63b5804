// Package profile defines the client profile extracted from a discovery
// call and the list normalization helpers shared by every component that
// renders profile data into prompt text.
//
// A profile describes the prospect's customer (the client we prospect
// for), not the prospect itself. It is created once by the extraction
// boundary and treated as immutable afterwards.
package profile

// Default constraint values applied when extraction returns nothing.
const (
	DefaultTone     = "natural, directo, sin corporativismo"
	DefaultLanguage = "es-ES"
)

// ClientProfile is the structured record built from a sales-call
// transcript. After Normalized(), every list field is present (empty
// means unknown, never nil) and every string is trimmed.
type ClientProfile struct {
	ID            string      `json:"id,omitempty"`
	Offer         string      `json:"offer"`
	ValueProps    []string    `json:"value_props"`
	ICP           ICP         `json:"icp"`
	CaseStudy     CaseStudy   `json:"case_study"`
	ProofPoints   []string    `json:"proof_points"`
	Constraints   Constraints `json:"constraints"`
	ClientSummary string      `json:"client_summary"`
	BuyerPersona  string      `json:"buyer_persona"`
}

// ICP describes the ideal customer profile: which companies to target
// and which roles decide.
type ICP struct {
	CompanyTypes []string `json:"company_types"`
	BuyerRoles   []string `json:"buyer_roles"`
}

// CaseStudy is the flagship success story the campaigns lean on.
type CaseStudy struct {
	Name             string      `json:"name"`
	Industry         string      `json:"industry"`
	CompanySize      string      `json:"company_size"`
	SimilarCompanies []string    `json:"similar_companies"`
	Problem          string      `json:"problem"`
	Solution         string      `json:"solution"`
	Phases           []string    `json:"phases"`
	Results          CaseResults `json:"results"`
}

// CaseResults splits case-study outcomes into qualitative achievements
// and hard numbers. Numeric entries take priority in generated copy.
type CaseResults struct {
	General []string `json:"general"`
	Numeric []string `json:"numeric"`
}

// Constraints carries the tone and language every generated line must
// respect.
type Constraints struct {
	Tone     string `json:"tone"`
	Language string `json:"language"`
}

// Normalized returns a copy of the profile with every list field passed
// through NormalizeList. The result never has nil slices, so downstream
// formatters can range without nil checks.
func (p ClientProfile) Normalized() ClientProfile {
	p.ValueProps = NormalizeList(p.ValueProps)
	p.ProofPoints = NormalizeList(p.ProofPoints)
	p.ICP.CompanyTypes = NormalizeList(p.ICP.CompanyTypes)
	p.ICP.BuyerRoles = NormalizeList(p.ICP.BuyerRoles)
	p.CaseStudy.SimilarCompanies = NormalizeList(p.CaseStudy.SimilarCompanies)
	p.CaseStudy.Phases = NormalizeList(p.CaseStudy.Phases)
	p.CaseStudy.Results.General = NormalizeList(p.CaseStudy.Results.General)
	p.CaseStudy.Results.Numeric = NormalizeList(p.CaseStudy.Results.Numeric)
	return p
}
