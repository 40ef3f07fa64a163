package domain

// OwnerProfile is the static portfolio-owner document served on the public
// info endpoint. It is loaded from a config file at startup, never persisted.
type OwnerProfile struct {
	Name       string              `json:"name" yaml:"name"`
	Title      string              `json:"title" yaml:"title"`
	Bio        string              `json:"bio" yaml:"bio"`
	Skills     map[string][]string `json:"skills" yaml:"skills"`
	Experience []OwnerExperience   `json:"experience" yaml:"experience"`
	Education  []OwnerEducation    `json:"education" yaml:"education"`
	Contact    OwnerContact        `json:"contact" yaml:"contact"`
}

type OwnerExperience struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
}

type OwnerEducation struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year" yaml:"year"`
	Description string `json:"description" yaml:"description"`
}

type OwnerContact struct {
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
}

type PortfolioUsecase interface {
	Owner() *OwnerProfile
}
