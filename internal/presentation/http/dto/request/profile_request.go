package request

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=255"`
	StoreName        string `json:"store_name"`
	StoreAddress     string `json:"store_address"`
	StoreContact     string `json:"store_contact"`
	StoreCountryCode string `json:"store_country_code"`
	CurrencySymbol   string `json:"currency_symbol" binding:"omitempty,max=8"`
}

// IssueEmailCodeRequest represents an email verification request
type IssueEmailCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ConfirmEmailCodeRequest represents an email code confirmation
type ConfirmEmailCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// IssuePhoneCodeRequest represents a phone verification request
type IssuePhoneCodeRequest struct {
	CountryCode string `json:"country_code" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

// ConfirmPhoneCodeRequest represents a phone code confirmation
type ConfirmPhoneCodeRequest struct {
	CountryCode string `json:"country_code" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
}
