package store

// Memory keeps values in process memory. It runs everything through the gob
// codec so it round-trips values exactly like Bolt does.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (s *Memory) Get(key string, v interface{}) (bool, error) {
	data, ok := s.values[key]
	if !ok {
		return false, nil
	}

	return true, decode(data, v)
}

func (s *Memory) Set(key string, v interface{}) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	s.values[key] = data

	return nil
}
