package ui

import (
	"errors"
	"strconv"

	"github.com/idilsaglam/teamtodo/internal/app"
)

// Feedback and prompt texts shared by the CLI and the TUI.
const (
	MsgAdded          = "할 일이 추가되었습니다! 📝"
	MsgCompleted      = "완료했습니다! 🎉"
	MsgReopened       = "미완료로 변경했습니다."
	MsgRemoved        = "할 일이 삭제되었습니다. 🗑️"
	MsgClearedDone    = "완료된 항목들이 삭제되었습니다. ✨"
	MsgClearedAll     = "모든 할 일이 삭제되었습니다. 🆕"
	MsgNoCompleted    = "완료된 항목이 없습니다."
	MsgNothingToClear = "삭제할 항목이 없습니다."
	MsgSignedIn       = "로그인 성공! 👋"
	MsgSignedUp       = "회원가입 및 로그인 성공! 🎉"
	MsgSignedOut      = "로그아웃 되었습니다."
	MsgNotFound       = "해당 할 일을 찾을 수 없습니다."

	ConfirmRemove   = "정말로 이 할 일을 삭제하시겠습니까?"
	ConfirmClearAll = "모든 할 일을 삭제하시겠습니까? 이 작업은 되돌릴 수 없습니다."
	ConfirmSignOut  = "로그아웃 하시겠습니까?"
)

// ConfirmClearCompleted asks before dropping n completed items.
func ConfirmClearCompleted(n int) string {
	return "완료된 " + strconv.Itoa(n) + "개의 항목을 삭제하시겠습니까?"
}

// ExternalWelcome is the greeting after an external sign-in.
func ExternalWelcome(name string, created bool) string {
	if created {
		return "외부 계정으로 가입 및 로그인되었습니다! 환영합니다 " + name + "님! 🎉"
	}
	return "로그인 성공! 환영합니다 " + name + "님! 👋"
}

var messages = []struct {
	err error
	msg string
}{
	{app.ErrNotSignedIn, "로그인이 필요합니다."},
	{app.ErrEmptyText, "할 일을 입력해주세요!"},
	{app.ErrTextTooLong, "할 일은 100자 이내로 입력해주세요!"},
	{app.ErrInvalidDueDate, "마감일 형식이 올바르지 않습니다. (YYYY-MM-DD)"},
	{app.ErrInvalidDueTime, "마감 시간은 00-23시, 00/15/30/45분 중에서 선택해주세요."},
	{app.ErrEmptyMessage, "메시지를 입력해주세요."},
	{app.ErrMissingFields, "모든 필드를 입력해주세요."},
	{app.ErrUsernameLength, "사용자명은 2-20자 사이여야 합니다."},
	{app.ErrPasswordTooShort, "비밀번호는 6자 이상이어야 합니다."},
	{app.ErrPasswordMismatch, "비밀번호가 일치하지 않습니다."},
	{app.ErrUsernameTaken, "이미 존재하는 사용자명입니다."},
	{app.ErrInvalidCredentials, "사용자명 또는 비밀번호가 잘못되었습니다."},
	{app.ErrExternalAuth, "외부 로그인 중 오류가 발생했습니다. 다시 시도해주세요."},
	{app.ErrNothingToClear, MsgNothingToClear},
}

// Message turns an app error into the text shown to the user. Unknown
// errors are shown as-is.
func Message(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
