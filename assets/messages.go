package assets

import _ "embed"

// DefaultQuestions - встроенный набор вопросов, если questions.json не найден.
//
//go:embed questions.json
var DefaultQuestions []byte

const (
	WelcomeMessage = "Привет, %s! 👋\n\n" +
		"Это викторина по 10 категориям. Выбирай категорию и сложность.\n" +
		"⏳ На ответ %d секунд. Подсказка убирает 2 неправильных варианта и стоит %d очков.\n" +
		"Очки: 5/10/15 за лёгкий/средний/сложный. Каждые 3 правильных подряд — бонус +5 очков.\n\n" +
		"Текущий счёт: %d очков"

	MenuMessage = "🏠 Меню\nТекущий счёт: %d очков"

	RulesMessage = "ℹ️ Правила и очки\n\n" +
		"• %d секунд на ответ, таймер тикает в сообщении.\n" +
		"• Подсказка убирает 2 неверных варианта и стоит %d очков.\n" +
		"• Очки за ответ: Лёгкий 5 · Средний 10 · Сложный 15.\n" +
		"• Комбо: каждые 3 правильных подряд — +5 очков.\n\n" +
		"Сейчас: %d очков · Серия правильных: %d"

	ChooseDifficulty = "Категория: %s\nВыбери сложность:"

	QuestionHeader  = "⏳ Осталось: %02d c\n\nКатегория: %s · %s\n\n"
	QuestionBody    = "❓ %s"
	HintAppliedMark = "\n\n(Подсказка применена)"

	QuestionsOver = "Категория: %s · %s\n\n" +
		"🛑 Вопросы в этой подборке закончились!\n\n" +
		"Текущий счёт: %d очков"

	ResultCorrect = "✅ Правильно!"
	ResultWrong   = "❌ Неверно."
	ResultTimeout = "⏰ Время вышло — ответ неверный."
	ResultGained  = " +%d очков"
	ResultCombo   = " (+%d комбо)"
	ResultScore   = "Счёт: %d · Серия: %d"
	ResultAnswer  = "\nПравильный ответ: %s"
	ResultFooter  = "Категория: %s · %s"

	NoActiveQuestion     = "Нет активного вопроса"
	NoActiveQuestionMenu = "Нет активного вопроса.\nСчёт: %d очков"
	QuestionExpired      = "Этот вопрос уже неактуален"
	HintAlreadyUsed      = "Подсказка уже использована"
	HintCharged          = "Подсказка: −%d очков"
	UnknownCategory      = "Неизвестная категория"

	RoundInterrupted = "⚠️ Бот был перезапущен, вопрос отменён.\n\nТекущий счёт: %d очков"

	ScoreMessage = "📊 Твоя статистика\n\n" +
		"Очки: %d\nСерия правильных: %d\nОтветов: %d · Верных: %d"

	TopTitle = "🏆 Лучшие игроки:"
	TopEmpty = "Пока никто не набрал очков."

	PrivateOnlyMessage = "Викторина работает в личных сообщениях. Напиши мне напрямую 🙂"
	OnlyAdminsMessage  = "🚫 Команда доступна только администраторам."

	ReloadDone   = "🔄 Вопросы перезагружены: %d шт. (пропущено %d)"
	ReloadFailed = "⚠️ Не удалось перезагрузить вопросы: %v"

	ErrorMessagesForUser = "Что-то пошло не так. Попробуй ещё раз чуть позже."

	UnnownPerson = "Игрок"
)

// Кнопки
const (
	BtnRules  = "ℹ️ Правила/Очки"
	BtnMenu   = "🏠 В меню"
	BtnHint   = "🪄 Подсказка (−%d)"
	BtnNext   = "⏭️ Следующий вопрос"
	BtnEasy   = "🟢 Лёгкий"
	BtnMedium = "🟡 Средний"
	BtnHard   = "🔴 Сложный"
)
