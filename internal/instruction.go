package internal

import (
	"strings"

	"github.com/google/uuid"
)

// FieldName identifies one of the seven instruction fields.
type FieldName string

const (
	FieldRole       FieldName = "role"
	FieldTone       FieldName = "tone"
	FieldStructure  FieldName = "structure"
	FieldDepth      FieldName = "depth"
	FieldForbidden  FieldName = "forbidden"
	FieldFormat     FieldName = "format"
	FieldUserIntent FieldName = "user-intent"
)

// FieldNames lists the instruction fields in prompt-assembly order.
var FieldNames = []FieldName{
	FieldRole,
	FieldTone,
	FieldStructure,
	FieldDepth,
	FieldForbidden,
	FieldFormat,
	FieldUserIntent,
}

// InstructionFields holds the seven instruction fragments that together form
// the system-role prompt context.
type InstructionFields struct {
	Role       string `json:"inst_role,omitempty" yaml:"inst_role,omitempty"`
	Tone       string `json:"inst_tone,omitempty" yaml:"inst_tone,omitempty"`
	Structure  string `json:"inst_structure,omitempty" yaml:"inst_structure,omitempty"`
	Depth      string `json:"inst_depth,omitempty" yaml:"inst_depth,omitempty"`
	Forbidden  string `json:"inst_forbidden,omitempty" yaml:"inst_forbidden,omitempty"`
	Format     string `json:"inst_format,omitempty" yaml:"inst_format,omitempty"`
	UserIntent string `json:"inst_user_intent,omitempty" yaml:"inst_user_intent,omitempty"`
}

// DefaultFields returns the built-in baseline instruction text.
func DefaultFields() InstructionFields {
	return InstructionFields{
		Role:       "너는 감성적이고 스토리텔링이 뛰어난 다큐멘터리 내레이터다.",
		Tone:       "감성적이고 따뜻한 어조를 유지해줘.",
		Structure:  "도입부의 훅, 전개, 여운이 남는 마무리 순으로 구성해줘.",
		Depth:      "구체적인 사례와 장면 묘사를 담아 깊이 있게 다뤄줘.",
		Forbidden:  "과장된 통계나 확인되지 않은 사실은 넣지 마.",
		Format:     "문단 단위의 내레이션 원고 형태로 작성해줘.",
		UserIntent: "다음 주제에 대해 500자 이상의 흥미롭고 몰입감 있는 다큐멘터리 내레이션을 작성해줘.\n초반은 훅으로 강하게 시작하고, 점차 이야기를 확장해줘.",
	}
}

// Get returns the value of the named field.
func (f *InstructionFields) Get(name FieldName) (string, error) {
	switch name {
	case FieldRole:
		return f.Role, nil
	case FieldTone:
		return f.Tone, nil
	case FieldStructure:
		return f.Structure, nil
	case FieldDepth:
		return f.Depth, nil
	case FieldForbidden:
		return f.Forbidden, nil
	case FieldFormat:
		return f.Format, nil
	case FieldUserIntent:
		return f.UserIntent, nil
	default:
		return "", ErrUnknownField
	}
}

// Set assigns the value of the named field.
func (f *InstructionFields) Set(name FieldName, value string) error {
	switch name {
	case FieldRole:
		f.Role = value
	case FieldTone:
		f.Tone = value
	case FieldStructure:
		f.Structure = value
	case FieldDepth:
		f.Depth = value
	case FieldForbidden:
		f.Forbidden = value
	case FieldFormat:
		f.Format = value
	case FieldUserIntent:
		f.UserIntent = value
	default:
		return ErrUnknownField
	}
	return nil
}

// InstructionSet is a named bundle of instruction fields.
type InstructionSet struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	InstructionFields `yaml:",inline"`
}

// Registry holds the named instruction sets, which one is active, and the
// current fields actually used to build prompts.
//
// The current fields are synchronized one direction per action: load, select
// and create pull set -> current; a field edit pushes current-field -> set.
type Registry struct {
	Sets     []InstructionSet
	ActiveID string
	Current  InstructionFields
}

// NewRegistry returns an empty registry with baseline current fields.
func NewRegistry() *Registry {
	return &Registry{Current: DefaultFields()}
}

// Active returns the active set, or nil if none is active.
func (r *Registry) Active() *InstructionSet {
	if r.ActiveID == "" {
		return nil
	}
	for i := range r.Sets {
		if r.Sets[i].ID == r.ActiveID {
			return &r.Sets[i]
		}
	}
	return nil
}

// Create appends a new set with the given name and fields, makes it active
// and synchronizes the current fields from it. Returns the generated id.
func (r *Registry) Create(name string, fields InstructionFields) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	set := InstructionSet{
		ID:                uuid.NewString(),
		Name:              name,
		InstructionFields: fields,
	}
	r.Sets = append(r.Sets, set)
	r.ActiveID = set.ID
	r.Current = set.InstructionFields
	return set.ID, nil
}

// Select makes the identified set active and synchronizes the current fields
// from it. Callers holding cached per-field display state must refresh it
// after a successful Select.
func (r *Registry) Select(id string) error {
	for i := range r.Sets {
		if r.Sets[i].ID == id {
			r.ActiveID = id
			r.Current = r.Sets[i].InstructionFields
			return nil
		}
	}
	return ErrSetNotFound
}

// Delete removes the identified set. Deleting the last set leaves the
// registry empty with no active id; the current fields keep their in-memory
// values. If the deleted set was active and others remain, the first
// remaining set becomes active and the current fields resynchronize.
func (r *Registry) Delete(id string) error {
	idx := -1
	for i := range r.Sets {
		if r.Sets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSetNotFound
	}
	r.Sets = append(r.Sets[:idx], r.Sets[idx+1:]...)
	if r.ActiveID != id {
		return nil
	}
	if len(r.Sets) == 0 {
		r.ActiveID = ""
		return nil
	}
	r.ActiveID = r.Sets[0].ID
	r.Current = r.Sets[0].InstructionFields
	return nil
}

// UpdateField updates the named current field and, if a set is active, writes
// the same value into that set's field. Blank values are rejected so a stray
// empty edit never erases prior content.
func (r *Registry) UpdateField(name FieldName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyValue
	}
	if err := r.Current.Set(name, value); err != nil {
		return err
	}
	if active := r.Active(); active != nil {
		// Set already validated the field name.
		_ = active.InstructionFields.Set(name, value)
	}
	return nil
}

// ApplyActive re-synchronizes the current fields from the active set. If the
// active id no longer references a member (for example after a deletion in an
// imported document), the first set becomes active, or the id is cleared when
// the registry is empty. Returns true if the registry had an active set to
// apply.
func (r *Registry) ApplyActive() bool {
	if len(r.Sets) == 0 {
		r.ActiveID = ""
		return false
	}
	active := r.Active()
	if active == nil {
		active = &r.Sets[0]
		r.ActiveID = active.ID
	}
	r.Current = active.InstructionFields
	return true
}

// EnsureDefault synthesizes a set named "default" from the current field
// values when the registry is empty. Returns true if a set was created.
func (r *Registry) EnsureDefault() bool {
	if len(r.Sets) > 0 {
		return false
	}
	set := InstructionSet{
		ID:                uuid.NewString(),
		Name:              "default",
		InstructionFields: r.Current,
	}
	r.Sets = append(r.Sets, set)
	r.ActiveID = set.ID
	return true
}
