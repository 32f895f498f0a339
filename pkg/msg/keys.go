package msg

// Message keys shared between validation, the API gateway, and the store.
const (
	// validation: account fields
	UsernameRequired        = "usernameRequired"
	UsernameTooShort        = "usernameTooShort"
	UsernameTooLong         = "usernameTooLong"
	UsernameInvalidFormat   = "usernameInvalidFormat"
	EmailRequired           = "emailRequired"
	EmailTooLong            = "emailTooLong"
	EmailInvalidFormat      = "emailInvalidFormat"
	PasswordRequired        = "passwordRequired"
	PasswordTooShort        = "passwordTooShort"
	PasswordTooLong         = "passwordTooLong"
	PasswordInvalidFormat   = "passwordInvalidFormat"
	ConfirmPasswordRequired = "confirmPasswordRequired"
	PasswordsDontMatch      = "passwordsDontMatch"
	FirstNameTooLong        = "firstNameTooLong"
	FirstNameInvalidFormat  = "firstNameInvalidFormat"
	LastNameTooLong         = "lastNameTooLong"
	LastNameInvalidFormat   = "lastNameInvalidFormat"
	PhoneTooShort           = "phoneTooShort"
	PhoneTooLong            = "phoneTooLong"
	PhoneInvalidFormat      = "phoneInvalidFormat"

	// validation: tasks and listing
	TaskTitleRequired      = "taskTitleRequired"
	TaskTitleTooShort      = "taskTitleTooShort"
	TaskTitleTooLong       = "taskTitleTooLong"
	TaskTitleInvalidFormat = "taskTitleInvalidFormat"
	TaskIDRequired         = "taskIDRequired"
	TaskStatusRequired     = "taskStatusRequired"
	TaskDueDateFuture      = "taskDueDateFuture"
	TaskDueDateInvalid     = "taskDueDateInvalid"
	PageNumberInvalid      = "pageNumberInvalid"
	PageSizeInvalid        = "pageSizeInvalid"
	SearchTermTooLong      = "searchTermTooLong"

	// operation fallbacks when the server response carries no message
	FailListTasks  = "failListTasks"
	FailCreateTask = "failCreateTask"
	FailUpdateTask = "failUpdateTask"
	FailDeleteTask = "failDeleteTask"
	RegisterFailed = "registerFailed"
	RegisterDone   = "registerDone"
	LoginFailed    = "loginFailed"
	LogoutFailed   = "logoutFailed"

	// gateway notices
	RateLimited    = "rateLimited"
	RetryAfterHint = "retryAfterHint"
	SessionExpired = "sessionExpired"
)
