package bancogo

// Person is a registered customer. Records are immutable once registered;
// the identifier is the uniqueness key.
type Person struct {
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	Identifier string `json:"identifier"`
	Address    string `json:"address"`
}

// Registry holds every registered person. Lookup is a linear scan on
// identifier equality; the registry never grows past console scale.
type Registry struct {
	people []*Person
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(identifier, fullName, birthDate, address string) (*Person, error) {
	for _, p := range r.people {
		if p.Identifier == identifier {
			return nil, ErrAlreadyExists{Identifier: identifier}
		}
	}
	p := &Person{
		FullName:   fullName,
		BirthDate:  birthDate,
		Identifier: identifier,
		Address:    address,
	}
	r.people = append(r.people, p)
	return p, nil
}

func (r *Registry) Find(identifier string) (*Person, error) {
	for _, p := range r.people {
		if p.Identifier == identifier {
			return p, nil
		}
	}
	return nil, ErrPersonNotFound{Identifier: identifier}
}

func (r *Registry) Len() int {
	return len(r.people)
}
