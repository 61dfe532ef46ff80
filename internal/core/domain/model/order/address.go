package order

import (
	"errors"

	"checkout/internal/pkg/errs"
)

// Address is a value object holding a billing or shipping destination.
// Street, city, and zip are required; the remaining fields are optional.
type Address struct {
	firstName string
	lastName  string
	street    string
	city      string
	zip       string
	country   string
}

// NewAddress creates a validated address.
func NewAddress(firstName, lastName, street, city, zip, country string) (Address, error) {
	var errList []error
	if street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("street"))
	}
	if city == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if zip == "" {
		errList = append(errList, errs.NewValueIsRequiredError("zip"))
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return Address{
		firstName: firstName,
		lastName:  lastName,
		street:    street,
		city:      city,
		zip:       zip,
		country:   country,
	}, nil
}

// Validate checks the address was built via NewAddress.
func (a Address) Validate() error {
	if a.street == "" || a.city == "" || a.zip == "" {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}

// FirstName returns the recipient's first name.
func (a Address) FirstName() string { return a.firstName }

// LastName returns the recipient's last name.
func (a Address) LastName() string { return a.lastName }

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// Zip returns the postal code of the address.
func (a Address) Zip() string { return a.zip }

// Country returns the country code of the address.
func (a Address) Country() string { return a.country }

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}
