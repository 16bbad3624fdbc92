package apierr

import (
	"fmt"
	"strings"
)

// Family — семейство ресурсов backend API.
type Family string

const (
	FamilyAccount      Family = "account"
	FamilyToken        Family = "token"
	FamilyGrant        Family = "grant"
	FamilyProject      Family = "project"
	FamilyPolicy       Family = "policy"
	FamilyProjectGrant Family = "project-grant"
	FamilyComponent    Family = "component"
	FamilyWorker       Family = "worker"
	FamilyDeployment   Family = "deployment"
	FamilyLogin        Family = "login"
)

// AllFamilies — все семейства.
var AllFamilies = []Family{
	FamilyAccount,
	FamilyToken,
	FamilyGrant,
	FamilyProject,
	FamilyPolicy,
	FamilyProjectGrant,
	FamilyComponent,
	FamilyWorker,
	FamilyDeployment,
	FamilyLogin,
}

// String возвращает имя семейства.
func (f Family) String() string {
	return string(f)
}

// LoginRestrictedMessage — ответ на 403 при входе: регистрация закрыта.
const LoginRestrictedMessage = `At the moment account creation is restricted.
None of your verified emails is whitelisted.
Please contact us to create an account.
`

// familyRule — закрытый набор статусов семейства и его функция сообщений.
type familyRule struct {
	statuses []int
	message  func(e *BackendError) string
}

var families = map[Family]familyRule{
	FamilyAccount:      {statuses: []int{400, 404, 500}, message: commonMessage},
	FamilyToken:        {statuses: []int{400, 404, 500}, message: commonMessage},
	FamilyGrant:        {statuses: []int{400, 404, 500}, message: commonMessage},
	FamilyProject:      {statuses: []int{400, 403, 404, 500}, message: commonMessage},
	FamilyPolicy:       {statuses: []int{400, 403, 404, 500}, message: commonMessage},
	FamilyProjectGrant: {statuses: []int{400, 403, 404, 500}, message: commonMessage},
	FamilyComponent:    {statuses: []int{400, 403, 404, 409, 500, 504}, message: commonMessage},
	FamilyWorker:       {statuses: []int{400, 403, 404, 409, 500}, message: commonMessage},
	FamilyDeployment:   {statuses: []int{400, 403, 404, 500}, message: commonMessage},
	FamilyLogin:        {statuses: []int{401, 403, 500}, message: loginMessage},
}

// Statuses возвращает закрытый набор HTTP-статусов семейства.
func (f Family) Statuses() []int {
	rule, ok := families[f]
	if !ok {
		return nil
	}
	return append([]int(nil), rule.statuses...)
}

// Allows сообщает, входит ли вид ошибки в набор семейства.
// Транспортные виды (RequestFailure, InvalidHeader, UnexpectedStatus) есть у всех.
func (f Family) Allows(k Kind) bool {
	rule, ok := families[f]
	if !ok {
		return false
	}
	switch k {
	case KindRequestFailure, KindInvalidHeader, KindUnexpectedStatus:
		return true
	}
	for _, s := range rule.statuses {
		if statusKinds[s] == k {
			return true
		}
	}
	return false
}

// allowsStatus сообщает, описан ли статус для семейства.
func (f Family) allowsStatus(status int) bool {
	for _, s := range families[f].statuses {
		if s == status {
			return true
		}
	}
	return false
}

func commonMessage(e *BackendError) string {
	switch e.Kind {
	case KindRequestFailure:
		return fmt.Sprintf("Unexpected request failure: %v", e.Err)
	case KindInvalidHeader:
		return fmt.Sprintf("Unexpected invalid header value: %v", e.Err)
	case KindNotFound:
		return fmt.Sprintf("Not found: %s", e.Message)
	case KindBadRequest:
		return fmt.Sprintf("Invalid API call: %s", strings.Join(e.Errors, ", "))
	case KindForbidden:
		return fmt.Sprintf("Limit Exceeded: %s", e.Detail)
	case KindInternal:
		return fmt.Sprintf("Internal server error: %s", e.Detail)
	case KindConflict:
		return fmt.Sprintf("%s already exists", e.ResourceID)
	case KindGatewayTimeout:
		return "Gateway Timeout"
	default:
		return unexpectedStatus(e)
	}
}

func loginMessage(e *BackendError) string {
	switch e.Kind {
	case KindForbidden:
		return LoginRestrictedMessage
	case KindInternal:
		return fmt.Sprintf("Internal server error on Login: %s", e.Detail)
	case KindUnauthorized:
		return fmt.Sprintf("External service call error on Login: %s", e.Detail)
	default:
		return commonMessage(e)
	}
}

func unexpectedStatus(e *BackendError) string {
	return fmt.Sprintf("Unexpected status: %d", e.Status)
}
