package types

// TestProvider identifies the assessment vendor whose score file a record
// came from. Each provider reports a fixed family of component codes.
type TestProvider string

const (
	// ProviderQuestar reports reading-claim components RC1..RC5.
	ProviderQuestar TestProvider = "QUESTAR"
	// ProviderMAAP reports domain components D1OP..D8OP plus rolled-up codes.
	ProviderMAAP TestProvider = "MAAP"
)

// ComponentPrefix returns the leading characters shared by every component
// code the provider reports.
func (p TestProvider) ComponentPrefix() string {
	switch p {
	case ProviderQuestar:
		return "RC"
	case ProviderMAAP:
		return "D"
	}
	return ""
}

// MaxComponents returns how many scored components the provider can report
// for a single assessment.
func (p TestProvider) MaxComponents() int {
	switch p {
	case ProviderQuestar:
		return 5
	case ProviderMAAP:
		return 8
	}
	return 0
}

func (p TestProvider) IsValid() bool {
	return p == ProviderQuestar || p == ProviderMAAP
}
