package internal

import (
	"context"
	"strings"
)

// Environment carries the process-wide defaults the session falls back to
// when no stored override exists.
type Environment struct {
	LoginID string
	LoginPW string
	APIKey  string
}

// Session owns the in-memory composition of credentials, history and the
// instruction registry, and is the mutation API the presentation shell
// calls. Every mutating operation saves the composed document before
// returning, so the backing file is never more than one completed operation
// stale.
type Session struct {
	store       *ConfigStore
	Credentials *CredentialStore
	History     *History
	Registry    *Registry

	loggedIn  bool
	autoLogin bool
}

// NewSession composes a session over the given store and environment.
func NewSession(store *ConfigStore, env Environment) *Session {
	return &Session{
		store:       store,
		Credentials: NewCredentialStore(env.LoginID, env.LoginPW),
		History:     NewHistory(),
		Registry:    NewRegistry(),
	}
}

// Start loads and migrates the persisted document, applies the active
// instruction set, synthesizes a default set when the registry is empty, and
// evaluates the login gate. Load failures degrade to in-memory defaults with
// a warning; Start never fails.
func (s *Session) Start() {
	doc, err := s.store.Load()
	if err != nil {
		LogWarn("config load failed, starting with defaults: %v", err)
	}
	if doc != nil {
		s.apply(doc)
	}
	// Registry state wins over the flat legacy fields when both were present.
	s.Registry.ApplyActive()
	if s.Registry.EnsureDefault() {
		LogInfo("no instruction sets found, created default set")
		s.persist()
	}
	if s.autoLogin {
		s.loggedIn = true
		LogDebug("auto-login enabled, skipping credential entry")
	}
}

// apply reconstitutes in-memory state from a loaded document.
func (s *Session) apply(doc *Document) {
	s.Registry.Current = doc.InstructionFields
	s.Registry.Sets = doc.Sets
	s.Registry.ActiveID = doc.ActiveSetID
	s.History.Replace(doc.History)
	s.Credentials.Username = doc.LoginID
	s.Credentials.Password = doc.LoginPW
	s.Credentials.Remember = doc.RememberLogin
	s.autoLogin = doc.AutoLogin
}

// Document composes the full current state into a persistable document.
func (s *Session) Document() *Document {
	return &Document{
		InstructionFields: s.Registry.Current,
		History:           s.History.Entries(),
		LoginID:           s.Credentials.Username,
		LoginPW:           s.Credentials.Password,
		RememberLogin:     s.Credentials.Remember,
		AutoLogin:         s.autoLogin,
		Sets:              s.Registry.Sets,
		ActiveSetID:       s.Registry.ActiveID,
	}
}

// persist saves the composed document. Write failures are reported as a
// warning and returned so the caller may retry; in-memory state stands.
func (s *Session) persist() error {
	if err := s.store.Save(s.Document()); err != nil {
		LogWarn("config save failed: %v", err)
		return err
	}
	return nil
}

// LoggedIn reports the login state.
func (s *Session) LoggedIn() bool {
	return s.loggedIn
}

// AutoLogin reports whether the persisted auto-login flag is set.
func (s *Session) AutoLogin() bool {
	return s.autoLogin
}

// Login validates the candidate credentials and transitions to LoggedIn.
// On success the remember and auto flags are persisted; with remember set,
// the credentials become the stored override.
func (s *Session) Login(user, pass string, remember, auto bool) error {
	if !s.Credentials.Validate(user, pass) {
		return ErrInvalidCredentials
	}
	s.loggedIn = true
	s.Credentials.SetRemember(remember, user, pass)
	s.autoLogin = auto
	return s.persist()
}

// Logout transitions to LoggedOut and clears the auto-login flag.
func (s *Session) Logout() error {
	s.loggedIn = false
	s.autoLogin = false
	return s.persist()
}

// ChangePassword replaces the stored password.
func (s *Session) ChangePassword(current, newPass, confirm string) error {
	if err := s.Credentials.ChangePassword(current, newPass, confirm); err != nil {
		return err
	}
	return s.persist()
}

// RecordTopic inserts a topic into the history. Empty topics are ignored.
func (s *Session) RecordTopic(topic string) error {
	if !s.History.Record(topic) {
		return nil
	}
	return s.persist()
}

// CreateSet creates a new instruction set, makes it active and persists.
func (s *Session) CreateSet(name string, fields InstructionFields) (string, error) {
	id, err := s.Registry.Create(name, fields)
	if err != nil {
		return "", err
	}
	if err := s.persist(); err != nil {
		return id, err
	}
	return id, nil
}

// SelectSet makes the identified set active and persists. Callers caching
// per-field display values must refresh them after a successful call.
func (s *Session) SelectSet(id string) error {
	if err := s.Registry.Select(id); err != nil {
		return err
	}
	return s.persist()
}

// DeleteSet removes the identified set and persists.
func (s *Session) DeleteSet(id string) error {
	if err := s.Registry.Delete(id); err != nil {
		return err
	}
	return s.persist()
}

// UpdateField writes a current-field edit through to the active set and
// persists.
func (s *Session) UpdateField(name FieldName, value string) error {
	if err := s.Registry.UpdateField(name, value); err != nil {
		return err
	}
	return s.persist()
}

// ExportConfig returns the document bytes exactly as Save would write them.
func (s *Session) ExportConfig() ([]byte, error) {
	return MarshalDocument(s.Document())
}

// ImportConfig overwrites the backing file with the given document bytes and
// reconstitutes in-memory state from it, running the same migration path as
// a normal start. The store is left untouched when parsing fails.
func (s *Session) ImportConfig(data []byte) error {
	if err := s.store.Import(data); err != nil {
		return err
	}
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	if doc != nil {
		s.apply(doc)
	}
	s.Registry.ApplyActive()
	if s.Registry.EnsureDefault() {
		return s.persist()
	}
	return nil
}

// ResetConfig deletes the backing file and clears all in-memory state to the
// built-in defaults. This is the only operation that forces logout.
func (s *Session) ResetConfig() error {
	if err := s.store.Reset(); err != nil {
		return err
	}
	envUser, envPass := s.Credentials.envUser, s.Credentials.envPass
	s.Credentials = NewCredentialStore(envUser, envPass)
	s.History = NewHistory()
	s.Registry = NewRegistry()
	s.loggedIn = false
	s.autoLogin = false
	return nil
}

// Generate records the topic, persists, and issues the generation call with
// the active instruction fields. The topic is recorded before the external
// call completes, so a failed call still leaves the topic in the history;
// this ordering is preserved from the observed behavior of the app.
func (s *Session) Generate(ctx context.Context, gen Generator, model Model, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", nil
	}
	if err := s.RecordTopic(topic); err != nil {
		LogWarn("recording topic failed: %v", err)
	}
	return gen.Generate(ctx, GenerateRequest{
		Model:  model,
		System: BuildSystemPrompt(s.Registry.Current),
		Prompt: BuildUserPrompt(topic),
	})
}
