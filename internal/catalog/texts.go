package catalog

import "fmt"

const WelcomeText = `🤝 **Добро пожаловать!**

Зависимости — это проблема, которая затрагивает миллионы людей по всему миру. Будь то алкоголь, наркотики, игры, еда или другие виды зависимостей — это не приговор, и выход есть всегда.

Мы понимаем, как сложно бывает сделать первый шаг, и мы здесь, чтобы помочь вам на этом пути. Наша цель — предоставить вам поддержку, информацию и ресурсы для преодоления зависимости.

✨ **Что я могу для вас сделать:**
• Подобрать группу поддержки в вашем городе
• Помочь найти специалиста
• Предоставить информационные материалы
• Ответить на вопросы о зависимостях

🔒 Наша беседа полностью конфиденциальна и анонимна.

Давайте начнем! Укажите вид зависимости:`

const DependencyMenuText = `🤝 Выбор типа зависимости

Укажите, с каким видом зависимости вы столкнулись:`

const HelpChoiceText = `📋 Выберите интересующие вас варианты:

1️⃣ Хотите ли подобрать группу поддержки/специалиста для помощи?

2️⃣ Хотите ли ознакомиться с литературой о вашей зависимости?`

const SupportMenuText = `Выберите, что вам нужно:

Консультация психолога
Группа поддержки`

const LiteratureMenuText = "📚 Доступная литература:"

const LiteratureQuestionText = "📖 Хотите ли ознакомиться с литературой о вашей зависимости?"

const GenderPromptText = `👤 **Консультация специалиста**

Укажите ваш пол:`

const AgeUserPromptText = "🎂 **Укажите ваш возраст:**"

const AgeSpecialistPromptText = "👨‍⚕️ **Укажите предпочитаемый возраст специалиста:**"

const DiscoveryPromptText = `📊 **Как вы о нас узнали?**

Эта информация поможет нам лучше помогать другим людям:`

const GroupNamePromptText = `📝 **Укажите название группы:**

Пожалуйста, напишите название группы поддержки, через которую вы о нас узнали.`

const PsychologistNamePromptText = `📝 **Укажите имя психолога:**

Пожалуйста, напишите имя психолога, который вам рекомендовал нас.`

const AnonQuestionChoiceText = `❓ **Задать анонимный вопрос**

Хотите задать анонимный вопрос? Ответ будет опубликован в разделе "Ответы на популярные вопросы".`

const AnonQuestionPromptText = `📝 **Напишите свой вопрос:**

Пожалуйста, напишите ваш анонимный вопрос. Ответ появится в разделе "Ответы на популярные вопросы".`

const AnonQuestionThanksText = `✅ **Спасибо за обращение!**

Ваш вопрос принят. Скоро ответ на ваш вопрос появится в разделе "Ответы на популярные вопросы".`

const FAQText = `❓ Ответы на популярные вопросы

Q: Вредно ли опохмеляться?
A: Да, опохмеление лишь усугубляет пагубное воздействие на организм

Q: Алкоголь является фактором риска развития онкологических заболеваний?
A: Да, этанол, содержащийся в любом спиртном напитке, повышает вероятность возникновения онкологических заболеваний.

Q: Могу ли я сам, своей силой воли, избавиться от зависимости?
A: Если стадия лёгкая, попробовать можно, но при более тяжёлой степени зависимости без посторонние помощи и поддержки вы не справитесь

Q: Без чего (кого) не справиться с зависимостью?
A: Полноценно справиться с зависимостью поможет правильный подход, основанный на программе 12 шагов, поддержка со стороны и если требуется, обращение за медикаментозным лечением в клинике`

const WebinarsText = `📅 Расписание вебинаров спикеров

Ближайшие вебинары будут указаны позже.

Мы работаем над формированием расписания интересных и полезных вебинаров с опытными спикерами в области зависимостей и восстановления.

Следите за обновлениями!`

const FinalText = `✨ Спасибо за обращение!

Ваша заявка принята. В ближайшее время с вами свяжется наш специалист.

Важные контакты:
🆘 Экстренная помощь: 8-800-XXX-XX-XX
💬 Поддержка: @support_username
📧 Email: help@support.ru

Помните:
• Вы не одиноки в этой борьбе
• Обращение за помощью - это проявление силы
• Каждый день без зависимости - это победа

Вы можете начать новый разговор командой /start

Берегите себя! 💚`

const HelpCommandText = `🤖 **Помощь по использованию бота**

**Команды:**
/start - Начать новый разговор
/back - Вернуться на шаг назад
/help - Показать эту справку
/cancel - Отменить текущий разговор

**Что я умею:**
• Помочь определить тип зависимости
• Предоставить информацию о зависимостях
• Подобрать группу поддержки
• Найти специалиста
• Предложить литературу
• Принять анонимные вопросы

**Конфиденциальность:**
Все разговоры анонимны и конфиденциальны.

**Экстренная помощь:**
📞 8-800-XXX-XX-XX (круглосуточно)`

const CancelText = "Разговор отменен. Вы можете начать заново командой /start\n" +
	"При необходимости экстренной помощи: 8-800-XXX-XX-XX"

const SessionExpiredText = "Сессия истекла. Начните заново с /start"

var literatureLinks = map[string]struct{ read, buy string }{
	"12steps": {
		read: "https://docviewer.yandex.ru/view/1191821593/?page=2&*=YXDoR1EHiuwHHMWxXmEyErA3lal7InVybCI6Imh0dHBzOi8vYWFydXMucnUvcGRmL3R3ZWx2ZVN0ZXBzdHdlbHZlVHJhZGl0aW9ucy5wZGYiLCJ0aXRsZSI6InR3ZWx2ZVN0ZXBzdHdlbHZlVHJhZGl0aW9ucy5wZGYiLCJub2lmcmFtZSI6dHJ1ZSwidWlkIjoiMTE5MTgyMTU5MyIsInRzIjoxNzYwNTIzMzUzMDE0LCJ5dSI6IjkxNTE5OTIzNzE3NTQwODQ0MzYiLCJzZXJwUGFyYW1zIjoidG09MTc2MDUyMzM0OCZ0bGQ9cnUmbGFuZz1ydSZuYW1lPXR3ZWx2ZVN0ZXBzdHdlbHZlVHJhZGl0aW9ucy5wZGYmdGV4dD0xMislRDElODglRDAlQjAlRDAlQjMlRDAlQkUlRDAlQjIrJUQwJUIwJUQwJUJEJUQwJUJFJUQwJUJEJUQwJUI4JUQwJUJDJUQwJUJEJUQxJThCJUQxJTg1KyVEMCVCMCVEMCVCQiVEMCVCQSVEMCVCRSVEMCVCMyVEMCVCRSVEMCVCQiVEMCVCOCVEMCVCQSVEMCVCRSVEMCVCMiZ1cmw9aHR0cHMlM0EvL2FhcnVzLnJ1L3BkZi90d2VsdmVTdGVwc3R3ZWx2ZVRyYWRpdGlvbnMucGRmJmxyPTM1Jm1pbWU9cGRmJmwxMG49cnUmdHlwZT10b3VjaCZzaWduPTg1MmRkMGY1ZmU5OTc3ODgyZjVhM2U5OTdkNGM1OWU3JmtleW5vPTAifQ%3D%3D&lang=ru",
		buy:  "https://www.wildberries.ru/catalog/505858500/detail.aspx?size=702083937",
	},
	"new_glasses": {
		read: "https://docviewer.yandex.ru/view/1191821593/?*=Vsa9UIVG5n0LknyEWvSdE6vEIAp7InVybCI6Imh0dHBzOi8vYWEtYm9vay5uZXQvbG9hZHMvbm92aWVfb2hraS5wZGYiLCJ0aXRsZSI6Im5vdmllX29oa2kucGRmIiwibm9pZnJhbWUiOnRydWUsInVpZCI6IjExOTE4MjE1OTMiLCJ0cyI6MTc2MDUyMzQ1NDYwOSwieXUiOiI5MTUxOTkyMzcxNzU0MDg0NDM2Iiwic2VycFBhcmFtcyI6InRtPTE3NjA1MjMzODQmdGxkPXJ1Jmxhbmc9cnUmbmFtZT1ub3ZpZV9vaGtpLnBkZiZ0ZXh0PSVEMCVCMCVEMCVCRCVEMCVCRSVEMCVCRCVEMCVCOCVEMCVCQyVEMCVCRCVEMSU4QiVEMCVCNSslRDAlQjAlRDAlQkIlRDAlQkElRDAlQkUlRDAlQjMlRDAlQkUlRDAlQkIlRDAlQjglRDAlQkElRDAlQjgrJUQxJTg3JUQwJUIwJUQwJUJBKyVEMSU4NyslRDAlQkQlRDAlQkUlRDAlQjIlRDElOEIlRDAlQjUrJUQwJUJFJUQxJTg3JUQwJUJBJUQwJUI4JnVybD1odHRwcyUzQS8vYWEtYm9vay5uZXQvbG9hZHMvbm92aWVfb2hraS5wZGYmbHI9MzUmbWltZT1wZGYmbDEwbj1ydSZ0eXBlPXRvdWNoJnNpZ249MmEyNjhiMGQ0OWJiNDU5ZGQ3Mjg2ODk0ZGFhYTcwMDAma2V5bm89MCJ9&lang=ru",
		buy:  "https://ozon.ru/t/LtWbt2m",
	},
}

// LiteratureText формирует карточку выбранной книги со ссылками
// на чтение и покупку.
func LiteratureText(key string) string {
	name := LiteratureName(key)
	links, ok := literatureLinks[key]
	if !ok {
		return fmt.Sprintf("📖 **%s**\n\nВаш выбор зафиксирован. Ссылка на литературу будет отправлена вам администратором.", name)
	}
	return fmt.Sprintf("📖 **%s**\n\nВаш выбор зафиксирован.\n\n📚 Читать онлайн:\n%s\n\n🛒 Купить книгу:\n%s", name, links.read, links.buy)
}
