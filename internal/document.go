package internal

// Document is the persisted config unit: a single versionless JSON document
// holding the current instruction fields, the topic history, the login
// fields and the instruction set registry. Any subset of fields may be
// absent in older documents; ParseDocument migrates every recognized legacy
// shape into this canonical one.
type Document struct {
	InstructionFields `yaml:",inline"`

	History       []string         `json:"history" yaml:"history"`
	LoginID       string           `json:"login_id,omitempty" yaml:"login_id,omitempty"`
	LoginPW       string           `json:"login_pw,omitempty" yaml:"login_pw,omitempty"`
	RememberLogin bool             `json:"remember_login" yaml:"remember_login"`
	AutoLogin     bool             `json:"auto_login" yaml:"auto_login"`
	Sets          []InstructionSet `json:"instruction_sets" yaml:"instruction_sets"`
	ActiveSetID   string           `json:"active_instruction_set_id,omitempty" yaml:"active_instruction_set_id,omitempty"`
}

// NewDocument returns a document populated with the built-in defaults.
func NewDocument() *Document {
	return &Document{
		InstructionFields: DefaultFields(),
		History:           []string{},
		Sets:              []InstructionSet{},
	}
}
