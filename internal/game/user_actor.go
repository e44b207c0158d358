package game

// userActor - все операции одного игрока выполняются последовательно
// в его собственной горутине, без гонок между кнопками и таймером.
type userActor struct {
	userID int64
	inbox  chan actorMsg

	fsm   *FSM
	round *Round
}

type actorMsg struct {
	fn    func(a *userActor) error
	reply chan error
}

func newUserActor(userID int64) *userActor {
	a := &userActor{
		userID: userID,
		inbox:  make(chan actorMsg, 64),
		fsm:    NewFSM(),
	}
	go func() {
		for m := range a.inbox {
			m.reply <- m.fn(a)
		}
	}()
	return a
}

// dropRound - снять текущий раунд без начисления очков
func (a *userActor) dropRound() {
	if a.round == nil {
		return
	}
	a.round.cancel()
	a.round = nil
}
