package botinterface

import (
	tb "gopkg.in/telebot.v3"
)

var _ BotInterface = (*tb.Bot)(nil)

type BotInterface interface {
	Send(to tb.Recipient, what interface{}, options ...interface{}) (*tb.Message, error)
	Delete(msg tb.Editable) error
	Handle(endpoint interface{}, handler tb.HandlerFunc, middlwear ...tb.MiddlewareFunc)
	Respond(c *tb.Callback, resp ...*tb.CallbackResponse) error
	Edit(msg tb.Editable, what interface{}, opts ...interface{}) (*tb.Message, error)
	EditReplyMarkup(msg tb.Editable, markup *tb.ReplyMarkup) (*tb.Message, error)
}
