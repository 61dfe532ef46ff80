package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	Currency          string
	PromoServiceURL   string
	PaymentMethods    []string
	PrivilegedUserIDs []string

	DefaultAddressStreet  string
	DefaultAddressCity    string
	DefaultAddressZip     string
	DefaultAddressCountry string

	SweepSchedule   string
	SweepStaleAfter string
}
