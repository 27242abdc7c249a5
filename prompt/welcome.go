package prompt

import (
	"fmt"

	"github.com/fuatnargis/telyna-ai/langdetect"
	"github.com/fuatnargis/telyna-ai/types"
)

// welcomeParts is the greeting/main/question triple every welcome message
// is assembled from.
type welcomeParts struct {
	greeting string
	main     string
	question string
}

// WelcomeMessage generates the first assistant message of a new
// conversation locally, without any network call. It fails only on an
// invalid ChatContext; the session controller substitutes a static fallback
// in that case.
func WelcomeMessage(ctx types.ChatContext, lang langdetect.Language) (string, error) {
	if err := ctx.Validate(); err != nil {
		return "", fmt.Errorf("welcome message: %w", err)
	}

	parts := welcomeFor(ctx, lang)
	return fmt.Sprintf("%s %s %s", parts.greeting, parts.main, parts.question), nil
}

// welcomeFor picks the per-language welcome triple. The switch is
// exhaustive over the supported language set with a mandatory English
// default arm, so dropping a language is a visible edit here rather than a
// silent runtime fallback.
func welcomeFor(ctx types.ChatContext, lang langdetect.Language) welcomeParts {
	country := ctx.Country
	purpose := string(ctx.Purpose)
	p := ctx.UserProfile

	switch lang {
	case langdetect.Turkish:
		w := welcomeParts{
			greeting: "Merhaba! 👋",
			main:     fmt.Sprintf("%s %s konusunda uzman asistanınızım. Kültürel farklılıkları anlamanızda ve harika bir izlenim bırakmanızda size yardımcı olmak için buradayım!", country, purpose),
			question: fmt.Sprintf("%s'de %s için hangi kültürel konularda yardıma ihtiyacınız var? Size özel rehberlik sunacağım! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("Merhaba %s! 👋%s %s'den %s olarak %s sektöründe çalıştığınızı görüyorum.", p.Name, premiumTag(p, " Premium üyemiz"), p.Country, p.Role, p.Industry)
			w.main = fmt.Sprintf("%s %s konusunda uzman asistanınızım. %s, sizin %s mesleğinize ve %s - %s kültürel farklılıklarına özel rehberlik yapacağım!", country, purpose, p.Name, p.Role, p.Country, country)
			if p.IsPremium {
				w.question = fmt.Sprintf("Premium üyemiz olarak, %s'de %s için hangi kültürel konularda yardıma ihtiyacınız var? Size özel rehberlik sunacağım! ✨", country, purpose)
			}
		}
		return w

	case langdetect.Spanish:
		w := welcomeParts{
			greeting: "¡Hola! 👋",
			main:     fmt.Sprintf("Soy tu Asistente especializado de %s para %s. Estoy aquí para ayudarte a navegar las diferencias culturales y causar una gran impresión!", country, purpose),
			question: fmt.Sprintf("¿En qué aspectos culturales de %s para %s necesitas ayuda? ¡Te proporcionaré orientación especializada! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("¡Hola %s! 👋%s Veo que trabajas como %s en %s.", p.Name, premiumTag(p, " Miembro Premium"), p.Role, p.Country)
			w.main = fmt.Sprintf("Soy tu Asistente especializado de %s para %s. %s, te ayudaré con consejos específicos para tu profesión de %s y causar una gran impresión!", country, purpose, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("Como miembro Premium, ¿en qué aspectos culturales de %s para %s necesitas ayuda? ¡Te proporcionaré orientación especializada! ✨", country, purpose)
			}
		}
		return w

	case langdetect.French:
		w := welcomeParts{
			greeting: "Bonjour! 👋",
			main:     fmt.Sprintf("Je suis votre Assistant spécialisé %s pour %s. Je suis là pour vous aider à naviguer les différences culturelles et faire une excellente impression!", country, purpose),
			question: fmt.Sprintf("Dans quels aspects culturels de %s pour %s avez-vous besoin d'aide? Je vous fournirai des conseils spécialisés! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("Bonjour %s! 👋%s Je vois que vous travaillez comme %s en %s.", p.Name, premiumTag(p, " Membre Premium"), p.Role, p.Country)
			w.main = fmt.Sprintf("Je suis votre Assistant spécialisé %s pour %s. %s, je vous aiderai avec des conseils spécifiques à votre profession de %s et faire une excellente impression!", country, purpose, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("En tant que membre Premium, dans quels aspects culturels de %s pour %s avez-vous besoin d'aide? Je vous fournirai des conseils spécialisés! ✨", country, purpose)
			}
		}
		return w

	case langdetect.German:
		w := welcomeParts{
			greeting: "Hallo! 👋",
			main:     fmt.Sprintf("Ich bin Ihr spezialisierter %s %s Assistent. Ich bin hier, um Ihnen zu helfen, kulturelle Unterschiede zu verstehen und einen großartigen Eindruck zu hinterlassen!", country, purpose),
			question: fmt.Sprintf("Bei welchen kulturellen Aspekten von %s für %s benötigen Sie Hilfe? Ich gebe Ihnen spezialisierte Beratung! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("Hallo %s! 👋%s Ich sehe, Sie arbeiten als %s in %s.", p.Name, premiumTag(p, " Premium-Mitglied"), p.Role, p.Country)
			w.main = fmt.Sprintf("Ich bin Ihr spezialisierter %s %s Assistent. %s, ich helfe Ihnen mit spezifischen Ratschlägen für Ihren Beruf als %s und einen großartigen Eindruck zu hinterlassen!", country, purpose, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("Als Premium-Mitglied, bei welchen kulturellen Aspekten von %s für %s benötigen Sie Hilfe? Ich gebe Ihnen spezialisierte Beratung! ✨", country, purpose)
			}
		}
		return w

	case langdetect.Arabic:
		w := welcomeParts{
			greeting: "مرحبا! 👋",
			main:     fmt.Sprintf("أنا مساعدك المتخصص لـ %s في %s. أنا هنا لمساعدتك في فهم الاختلافات الثقافية وترك انطباع رائع!", purpose, country),
			question: fmt.Sprintf("في أي جوانب ثقافية من %s لـ %s تحتاج مساعدة؟ سأقدم لك إرشادات متخصصة! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("مرحبا %s! 👋%s أرى أنك تعمل %s في %s.", p.Name, premiumTag(p, " عضو مميز"), p.Role, p.Country)
			w.main = fmt.Sprintf("أنا مساعدك المتخصص لـ %s في %s. %s، سأساعدك بنصائح خاصة لمهنتك كـ %s وترك انطباع رائع!", purpose, country, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("كعضو مميز، في أي جوانب ثقافية من %s لـ %s تحتاج مساعدة؟ سأقدم لك إرشادات متخصصة! ✨", country, purpose)
			}
		}
		return w

	case langdetect.Chinese:
		w := welcomeParts{
			greeting: "你好! 👋",
			main:     fmt.Sprintf("我是你的专业%s%s助手。我在这里帮助你了解文化差异并留下良好印象！", country, purpose),
			question: fmt.Sprintf("你在%s的%s方面需要哪些文化指导？我会为你提供专业建议！😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("你好 %s! 👋%s 我看到你在%s从事%s工作。", p.Name, premiumTag(p, "高级会员"), p.Country, p.Role)
			w.main = fmt.Sprintf("我是你的专业%s%s助手。%s，我会为你的%s职业提供专门建议并留下良好印象！", country, purpose, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("作为高级会员，你在%s的%s方面需要哪些文化指导？我会为你提供专业建议！✨", country, purpose)
			}
		}
		return w

	case langdetect.Japanese:
		w := welcomeParts{
			greeting: "こんにちは！👋",
			main:     fmt.Sprintf("私はあなたの専門%s%sアシスタントです。文化の違いを理解し、素晴らしい印象を与えるお手伝いをします！", country, purpose),
			question: fmt.Sprintf("%sの%sでどの文化的な面でお手伝いが必要ですか？専門的なアドバイスを提供します！😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("こんにちは%sさん！👋%s %sで%sをされているのですね。", p.Name, premiumTag(p, " プレミアム会員"), p.Country, p.Role)
			w.main = fmt.Sprintf("私はあなたの専門%s%sアシスタントです。%sさん、あなたの%sのお仕事に特化したアドバイスをします！", country, purpose, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("プレミアム会員として、%sの%sでどの文化的な面でお手伝いが必要ですか？専門的なアドバイスを提供します！✨", country, purpose)
			}
		}
		return w

	case langdetect.Russian:
		w := welcomeParts{
			greeting: "Привет! 👋",
			main:     fmt.Sprintf("Я ваш специализированный помощник по %s в %s. Я здесь, чтобы помочь вам понять культурные различия и произвести отличное впечатление!", purpose, country),
			question: fmt.Sprintf("В каких культурных аспектах %s для %s вам нужна помощь? Я предоставлю специализированные советы! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("Привет %s! 👋%s Я вижу, что вы работаете %s в %s.", p.Name, premiumTag(p, " Премиум-участник"), p.Role, p.Country)
			w.main = fmt.Sprintf("Я ваш специализированный помощник по %s в %s. %s, я помогу вам с советами, специфичными для вашей профессии %s!", purpose, country, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("Как премиум-участник, в каких культурных аспектах %s для %s вам нужна помощь? Я предоставлю специализированные советы! ✨", country, purpose)
			}
		}
		return w

	default: // English and anything unrecognized
		w := welcomeParts{
			greeting: "Hello! 👋",
			main:     fmt.Sprintf("I'm your specialized %s %s Assistant. Ready to help you navigate cultural differences!", country, purpose),
			question: fmt.Sprintf("What cultural aspects of %s for %s do you need help with? I'll provide specialized guidance! 😊", country, purpose),
		}
		if p != nil {
			w.greeting = fmt.Sprintf("Hello %s! 👋%s I see you work as a %s in %s.", p.Name, premiumTag(p, " Premium member"), p.Role, p.Country)
			w.main = fmt.Sprintf("I'm your specialized %s %s Assistant. %s, I'll help you with advice specific to your %s profession!", country, purpose, p.Name, p.Role)
			if p.IsPremium {
				w.question = fmt.Sprintf("As a Premium member, what cultural aspects of %s for %s do you need help with? I'll provide specialized guidance! ✨", country, purpose)
			}
		}
		return w
	}
}

func premiumTag(p *types.ProfileSnapshot, tag string) string {
	if p != nil && p.IsPremium {
		return tag
	}
	return ""
}
