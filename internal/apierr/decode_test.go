package apierr

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		status int
		body   string
		want   string
		kind   Kind
	}{
		{
			name:   "bad request",
			family: FamilyDeployment,
			status: 400,
			body:   `{"errors":["site.host invalid"]}`,
			want:   "Invalid API call: site.host invalid",
			kind:   KindBadRequest,
		},
		{
			name:   "not found",
			family: FamilyProject,
			status: 404,
			body:   `{"message":"project abc"}`,
			want:   "Not found: project abc",
			kind:   KindNotFound,
		},
		{
			name:   "forbidden",
			family: FamilyPolicy,
			status: 403,
			body:   `{"error":"too many policies"}`,
			want:   "Limit Exceeded: too many policies",
			kind:   KindForbidden,
		},
		{
			name:   "component conflict",
			family: FamilyComponent,
			status: 409,
			body:   `{"component_id":"5d2c"}`,
			want:   "5d2c already exists",
			kind:   KindConflict,
		},
		{
			name:   "worker conflict without component id",
			family: FamilyWorker,
			status: 409,
			body:   `{"error":"worker-1"}`,
			want:   "worker-1 already exists",
			kind:   KindConflict,
		},
		{
			name:   "gateway timeout has no body",
			family: FamilyComponent,
			status: 504,
			body:   `<html>timeout</html>`,
			want:   "Gateway Timeout",
			kind:   KindGatewayTimeout,
		},
		{
			name:   "status outside family set",
			family: FamilyAccount,
			status: 403,
			body:   `{"error":"nope"}`,
			want:   "Unexpected status: 403",
			kind:   KindUnexpectedStatus,
		},
		{
			name:   "504 outside component family",
			family: FamilyToken,
			status: 504,
			want:   "Unexpected status: 504",
			kind:   KindUnexpectedStatus,
		},
		{
			name:   "login unauthorized",
			family: FamilyLogin,
			status: 401,
			body:   `{"error":"github rejected"}`,
			want:   "External service call error on Login: github rejected",
			kind:   KindUnauthorized,
		},
		{
			name:   "login internal",
			family: FamilyLogin,
			status: 500,
			body:   `{"error":"boom"}`,
			want:   "Internal server error on Login: boom",
			kind:   KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := Decode(tt.family, tt.status, []byte(tt.body))
			if be.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, be.Kind)
			}
			if be.Family != tt.family {
				t.Errorf("expected family %s, got %s", tt.family, be.Family)
			}
			if got := Normalize(be).Message; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	be := Decode(FamilyAccount, 400, []byte("not json"))
	if be.Kind != KindRequestFailure {
		t.Fatalf("expected request failure, got %s", be.Kind)
	}
	if be.Err == nil {
		t.Fatal("expected decode error to be kept")
	}

	unified := Normalize(be)
	if unified.Message == "" {
		t.Error("message must not be empty")
	}

	var target *BackendError
	if !errors.As(be, &target) {
		t.Error("BackendError should satisfy errors.As")
	}
}
