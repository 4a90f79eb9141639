package customer

import "github.com/google/uuid"

func Create(name string) (*Customer, error) {
	return New(uuid.NewString(), name)
}

func CreateWithAddress(name string, address Address) (*Customer, error) {
	c, err := Create(name)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	return c, nil
}
