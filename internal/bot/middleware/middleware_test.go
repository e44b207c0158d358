package middleware

import (
	"testing"
	"time"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"

	"gopkg.in/telebot.v3"
)

type fakeContext struct {
	telebot.Context
	chat     *telebot.Chat
	sender   *telebot.User
	callback *telebot.Callback

	sent      []interface{}
	responses []*telebot.CallbackResponse
}

func (f *fakeContext) Chat() *telebot.Chat         { return f.chat }
func (f *fakeContext) Sender() *telebot.User       { return f.sender }
func (f *fakeContext) Callback() *telebot.Callback { return f.callback }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Reply(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*telebot.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}

func passed(called *bool) telebot.HandlerFunc {
	return func(telebot.Context) error {
		*called = true
		return nil
	}
}

func TestPrivateOnly(t *testing.T) {
	t.Run("private passes", func(t *testing.T) {
		var called bool
		c := &fakeContext{chat: &telebot.Chat{Type: telebot.ChatPrivate}}
		_ = PrivateOnly(passed(&called))(c)
		if !called {
			t.Error("Expected handler to be called in private chat")
		}
	})

	t.Run("group blocked", func(t *testing.T) {
		var called bool
		c := &fakeContext{chat: &telebot.Chat{Type: telebot.ChatGroup}}
		_ = PrivateOnly(passed(&called))(c)
		if called {
			t.Error("Handler must not be called in group")
		}
		if len(c.sent) != 1 || c.sent[0] != messages.PrivateOnlyMessage {
			t.Errorf("Expected private-only notice, got %v", c.sent)
		}
	})

	t.Run("group callback alert", func(t *testing.T) {
		var called bool
		c := &fakeContext{chat: &telebot.Chat{Type: telebot.ChatSuperGroup}, callback: &telebot.Callback{}}
		_ = PrivateOnly(passed(&called))(c)
		if called || len(c.responses) != 1 {
			t.Errorf("Expected callback response, got %v", c.responses)
		}
	})
}

func TestOnlyAdmins(t *testing.T) {
	mw := OnlyAdmins([]int64{1, 2})

	var called bool
	_ = mw(passed(&called))(&fakeContext{sender: &telebot.User{ID: 2}})
	if !called {
		t.Error("Expected admin to pass")
	}

	called = false
	c := &fakeContext{sender: &telebot.User{ID: 3}}
	_ = mw(passed(&called))(c)
	if called {
		t.Error("Non-admin must be rejected")
	}
	if len(c.sent) != 1 || c.sent[0] != messages.OnlyAdminsMessage {
		t.Errorf("Expected only-admins reply, got %v", c.sent)
	}
}

func TestIsOld(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	fresh := &telebot.Update{Message: &telebot.Message{Unixtime: now.Add(-5 * time.Second).Unix()}}
	stale := &telebot.Update{Message: &telebot.Message{Unixtime: now.Add(-time.Minute).Unix()}}
	cb := &telebot.Update{Callback: &telebot.Callback{}}

	if isOld(fresh, 10*time.Second, now) {
		t.Error("fresh message must pass")
	}
	if !isOld(stale, 10*time.Second, now) {
		t.Error("stale message must be dropped")
	}
	if isOld(cb, 10*time.Second, now) {
		t.Error("callbacks are never dropped")
	}
	if isOld(stale, 0, now) {
		t.Error("zero maxAge disables the filter")
	}
}
