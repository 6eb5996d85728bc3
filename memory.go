package bancogo

// MemoryEndpoint is the process-local Repository: the person registry, the
// account directory, and the account number counter. Nothing survives the
// process; numbers are issued sequentially starting at 1.
type MemoryEndpoint struct {
	agency   string
	registry *Registry
	dir      *Directory
	nextNum  int64
}

var (
	_ Repository = (*MemoryEndpoint)(nil)
)

func NewMemoryEndpoint(agency string) *MemoryEndpoint {
	return &MemoryEndpoint{
		agency:   agency,
		registry: NewRegistry(),
		dir:      NewDirectory(),
		nextNum:  1,
	}
}

func (m *MemoryEndpoint) CreatePerson(req RegisterPersonReq) (*Person, error) {
	return m.registry.Register(req.Identifier, req.FullName, req.BirthDate, req.Address)
}

func (m *MemoryEndpoint) FindPerson(identifier string) (*Person, error) {
	return m.registry.Find(identifier)
}

// CreateAccount opens an account for an already-registered person. The
// counter advances only on success, so failed attempts leave no gap.
func (m *MemoryEndpoint) CreateAccount(identifier string) (*Account, error) {
	acct, err := OpenAccount(m.agency, m.nextNum, m.registry, identifier)
	if err != nil {
		return nil, err
	}
	m.dir.Append(acct)
	m.nextNum++
	return acct, nil
}

func (m *MemoryEndpoint) GetAccount(number int64) (*Account, error) {
	return m.dir.Get(number)
}

func (m *MemoryEndpoint) Accounts() *Cursor {
	return m.dir.Iter()
}
