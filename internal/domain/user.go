package domain

type InvestorLevel string

const (
	InvestorLevelBeginner     InvestorLevel = "INICIANTE"
	InvestorLevelModerate     InvestorLevel = "MODERADO"
	InvestorLevelAdvanced     InvestorLevel = "AVANCADO"
	InvestorLevelProfessional InvestorLevel = "PROFISSIONAL"
)

func (l InvestorLevel) Valid() bool {
	switch l {
	case InvestorLevelBeginner, InvestorLevelModerate, InvestorLevelAdvanced, InvestorLevelProfessional:
		return true
	}
	return false
}

// User is the authenticated user's profile as returned by login.
type User struct {
	Name          string
	Document      string
	PhoneNumber   string
	BirthDate     string
	Email         string
	InvestorLevel InvestorLevel
}
