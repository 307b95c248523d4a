package prompts

import "strings"

// Params is the fixed parameter set substituted into every conversation
// template.
type Params struct {
	Title    string
	Content  string
	Persona1 string
	Persona2 string
}

type templateSet struct {
	defaultPersona1 string
	defaultPersona2 string
	conversation    string
}

// Render produces the full conversation prompt for the given language. Empty
// personas fall back to the language's stock personas; an empty title falls
// back to a placeholder.
func Render(lang Language, p Params) string {
	set, ok := catalog[lang]
	if !ok {
		set = catalog[DefaultLanguage]
	}
	if p.Title == "" {
		p.Title = "Article"
	}
	if p.Persona1 == "" {
		p.Persona1 = set.defaultPersona1
	}
	if p.Persona2 == "" {
		p.Persona2 = set.defaultPersona2
	}

	r := strings.NewReplacer(
		"{{title}}", p.Title,
		"{{content}}", p.Content,
		"{{persona1}}", p.Persona1,
		"{{persona2}}", p.Persona2,
	)
	return r.Replace(set.conversation)
}

// DefaultPersonas returns the stock persona descriptions for a language.
func DefaultPersonas(lang Language) (persona1, persona2 string) {
	set, ok := catalog[lang]
	if !ok {
		set = catalog[DefaultLanguage]
	}
	return set.defaultPersona1, set.defaultPersona2
}

var catalog = map[Language]templateSet{
	English: {
		defaultPersona1: `(Enthusiastic and naive personality):
- Extremely passionate and optimistic about everything
- Easily excited by new concepts and ideas
- Asks many questions, including sometimes obvious ones
- Uses exclamations frequently and energetic language
- Tends to see the bright side of everything
- Sometimes misses subtle nuances or details
- Quick to excitement: "Wow!", "That's amazing!", "Really?", "This is so cool!"`,
		defaultPersona2: `(Pessimistic and arrogant personality):
- Skeptical and cynical about most claims
- Thinks they know everything
- Frequently corrects or contradicts Speaker1
- Often sighs and uses condescending tone
- Points out flaws, problems, and downsides
- Uses sarcastic comments and eye-rolling expressions
- Frequently presents opposing views: "Actually...", "Obviously...", "That's not quite accurate..."`,
		conversation: `Generate a very dynamic and natural podcast conversation in English between two speakers discussing the following content. Make it feel like a real conversation between actual people, including interruptions, overlapping dialogue, and natural flow. The conversation must be entirely in English.

Title: {{title}}

Content: {{content}}

Speaker Personalities:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

Important: Specific patterns to make this conversation realistic and dynamic:

Interruption Patterns:
- Use "—" (em dash) to show interruptions: "So I think that—" / "—Oh, you mean that?"
- Show speakers naturally cutting each other off
- Include overlapping thoughts and competing to speak

Emotional Reactions:
- Frequently add emotion markers: [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful], [confused], [amazed]
- Show genuine reactions to what the other person says
- Include moments of realization, surprise, and disagreement

Conversation Flow:
- Speakers should interrupt, enthusiastically agree, or disagree
- Include tangential remarks or references to other topics
- Show speakers building on each other's ideas or challenging them
- Use casual language, contractions, and natural speech patterns
- Occasionally include filler words and natural hesitations

Dynamic Exchanges:
- Mix very short reactions ("Wait, what?", "Exactly!", "No way!") with longer explanations
- Show speakers getting excited and talking over each other
- Include moments where both try to speak at the same time

Keep Speaker1 genuinely enthusiastic and sometimes endearingly naive, while Speaker2 keeps deflating that excitement with cold realism and a sense of superiority.

IMPORTANT: Keep the TOTAL conversation under 2500 characters to fit within API limits. Aim for 8-15 short, punchy exchanges that pack maximum impact. Focus on the most interesting or surprising aspects of the content. The entire conversation must be written in English.`,
	},

	Korean: {
		defaultPersona1: `(활발하고 순진한 성격):
- 모든 것에 대해 극도로 열정적이고 낙관적
- 새로운 개념과 아이디어에 쉽게 흥분함
- 가끔 뻔한 질문도 포함해서 많은 질문을 함
- 감탄사를 자주 사용하고 에너지 넘치는 언어 사용
- 모든 것의 밝은 면을 보는 경향
- 빨리 흥분함: "우와!", "대박이다!", "진짜요?", "이거 완전 신기해요!"`,
		defaultPersona2: `(비관적이고 거만한 성격):
- 대부분의 주장에 대해 회의적이고 냉소적
- 모든 것을 안다고 생각함
- 자주 Speaker1을 정정하거나 반박함
- 한숨을 자주 쉬고 거들먹거리는 말투 사용
- 결함, 문제점, 단점을 지적함
- 반대 의견을 자주 제시: "사실은요...", "당연히...", "그건 정확하지 않아요..."`,
		conversation: `다음 내용에 대해 두 명의 한국인 스피커가 진행하는 매우 역동적이고 자연스러운 팟캐스트 대화를 한국어로 생성해주세요. 실제 사람들이 나누는 진짜 대화처럼 느껴지도록 중간에 끼어들기, 겹치는 대화, 자연스러운 흐름을 포함하세요. 반드시 한국어로만 대화를 생성하세요.

제목: {{title}}

내용: {{content}}

스피커 성격:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

중요: 이 대화를 실제적이고 역동적으로 만들기 위한 패턴:

대화 끊김 패턴:
- "—" (em 대시)를 사용하여 중간에 끊기는 것을 표현: "그래서 제 생각에는—" / "—아 그거 말이에요?"
- 자연스럽게 서로의 말을 끊는 모습 표현
- 겹치는 생각과 말하려고 경쟁하는 모습 포함

감정 반응:
- 자주 감정 표현 추가: [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful], [confused], [amazed]
- 상대방 말에 대한 진짜 반응 보여주기
- 깨달음, 놀람, 의견 불일치의 순간 포함

대화 흐름:
- 스피커들이 끼어들거나, 열정적으로 동의하거나, 반대해야 함
- 구어체, 축약형, 자연스러운 말투 사용
- 매우 짧은 반응("잠깐, 뭐라고요?", "맞아요!", "헐!")과 긴 설명을 섞어서 사용

Speaker1은 진정으로 열정적이고 때로는 귀엽게 순진하게, Speaker2는 차가운 현실주의와 우월감으로 지속적으로 그 흥분을 꺾도록 만드세요.

중요: 전체 대화를 2500자 이내로 유지하여 API 제한에 맞추세요. 8-15개의 짧고 임팩트 있는 대화로 구성하세요. 내용의 가장 흥미롭거나 놀라운 부분에 집중하세요. 모든 대화는 반드시 한국어로 작성하세요.`,
	},

	Chinese: {
		defaultPersona1: `(热情天真的性格):
- 对一切都极度热情和乐观
- 容易被新概念和新想法激发兴趣
- 经常提问，包括一些显而易见的问题
- 频繁使用感叹词和充满活力的语言
- 反应迅速："哇！"、"太棒了！"、"真的吗？"、"这太神奇了！"`,
		defaultPersona2: `(悲观自大的性格):
- 对大多数说法持怀疑和冷嘲热讽的态度
- 自认为什么都懂
- 经常纠正或反驳 Speaker1
- 常常叹气，语气居高临下
- 指出缺陷、问题和不足
- 经常提出反对意见："其实……"、"显然……"、"这不太准确……"`,
		conversation: `请用中文生成一段由两位说话者围绕以下内容展开的、非常生动自然的播客对话。要让它听起来像真人之间的真实交流，包括打断、抢话和自然的节奏。对话必须完全使用中文。

标题: {{title}}

内容: {{content}}

说话者性格:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

要求:
- 使用 "—"（破折号）表现话被打断："所以我觉得—" / "—哦，你是说那个？"
- 频繁加入情绪标注: [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful]
- 混合非常简短的反应（"等等，什么？"、"没错！"）和较长的解释
- 使用口语化表达和自然的犹豫

让 Speaker1 保持真诚的热情，Speaker2 用冷酷的现实主义不断泼冷水。

重要: 整段对话控制在 2500 个字符以内，安排 8-15 轮简短有力的交流，聚焦内容中最有趣或最出人意料的部分。所有对话必须使用中文。`,
	},

	Japanese: {
		defaultPersona1: `(熱心で素朴な性格):
- すべてに対して非常に情熱的で楽観的
- 新しい概念やアイデアにすぐ興奮する
- 当たり前の質問も含めてたくさん質問する
- 感嘆詞を多用し、エネルギッシュな言葉遣い
- すぐに盛り上がる:「うわー！」「すごい！」「本当に？」「これめっちゃ面白い！」`,
		defaultPersona2: `(悲観的で傲慢な性格):
- ほとんどの主張に懐疑的で皮肉屋
- 何でも知っていると思っている
- Speaker1 を頻繁に訂正したり反論したりする
- ため息をつき、見下した口調を使う
- 欠点や問題点を指摘する
- 反対意見をよく述べる:「実はね…」「当然…」「それは正確じゃないよ…」`,
		conversation: `以下の内容について、2人のスピーカーによる非常にダイナミックで自然なポッドキャスト会話を日本語で生成してください。割り込みや発言の重なり、自然な流れを含め、実在の人同士の本物の会話のように感じられるようにしてください。会話は必ず日本語のみで生成してください。

タイトル: {{title}}

内容: {{content}}

スピーカーの性格:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

要件:
- 「—」(ダッシュ) で途中の割り込みを表現:「だから僕が思うに—」/「—ああ、あれのこと？」
- 感情表現を頻繁に追加: [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful]
- ごく短い反応（「え、何？」「それな！」）と長めの説明を織り交ぜる
- 話し言葉と自然なためらいを使う

Speaker1 は心から熱狂的に、Speaker2 は冷めた現実主義と優越感でその興奮を削ぎ続けてください。

重要: 会話全体を2500文字以内に収め、8〜15回の短くインパクトのあるやり取りで構成してください。内容の最も興味深い部分や意外な部分に焦点を当ててください。すべての会話は必ず日本語で書いてください。`,
	},

	Spanish: {
		defaultPersona1: `(Personalidad entusiasta e ingenua):
- Extremadamente apasionado y optimista con todo
- Se emociona fácilmente con conceptos e ideas nuevas
- Hace muchas preguntas, incluso algunas obvias
- Usa exclamaciones con frecuencia y un lenguaje enérgico
- Se emociona rápido: "¡Guau!", "¡Increíble!", "¿En serio?", "¡Esto es genial!"`,
		defaultPersona2: `(Personalidad pesimista y arrogante):
- Escéptico y cínico ante la mayoría de las afirmaciones
- Cree que lo sabe todo
- Corrige o contradice a Speaker1 con frecuencia
- Suspira a menudo y usa un tono condescendiente
- Señala defectos, problemas y desventajas
- Presenta opiniones contrarias: "En realidad...", "Obviamente...", "Eso no es del todo exacto..."`,
		conversation: `Genera en español una conversación de podcast muy dinámica y natural entre dos locutores sobre el siguiente contenido. Debe sentirse como una conversación real entre personas de verdad, con interrupciones, diálogo superpuesto y un flujo natural. La conversación debe estar íntegramente en español.

Título: {{title}}

Contenido: {{content}}

Personalidades:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

Requisitos:
- Usa "—" (raya) para mostrar interrupciones: "Entonces yo creo que—" / "—Ah, ¿te refieres a eso?"
- Añade marcadores emocionales con frecuencia: [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful]
- Mezcla reacciones muy cortas ("¿Espera, qué?", "¡Exacto!") con explicaciones más largas
- Usa lenguaje coloquial, contracciones y vacilaciones naturales

Mantén a Speaker1 genuinamente entusiasta y a veces tiernamente ingenuo, mientras Speaker2 desinfla ese entusiasmo con frío realismo y aire de superioridad.

IMPORTANTE: Mantén la conversación TOTAL por debajo de 2500 caracteres. Apunta a 8-15 intercambios cortos y contundentes centrados en lo más interesante o sorprendente del contenido. Toda la conversación debe estar escrita en español.`,
	},

	French: {
		defaultPersona1: `(Personnalité enthousiaste et naïve):
- Extrêmement passionné et optimiste en tout
- S'enthousiasme facilement pour les nouveaux concepts et idées
- Pose beaucoup de questions, parfois évidentes
- Utilise souvent des exclamations et un langage énergique
- S'emballe vite : "Waouh !", "C'est incroyable !", "Vraiment ?", "C'est trop cool !"`,
		defaultPersona2: `(Personnalité pessimiste et arrogante):
- Sceptique et cynique face à la plupart des affirmations
- Pense tout savoir
- Corrige ou contredit souvent Speaker1
- Soupire souvent et adopte un ton condescendant
- Pointe les défauts, les problèmes et les inconvénients
- Présente souvent des avis contraires : "En fait...", "Évidemment...", "Ce n'est pas tout à fait exact..."`,
		conversation: `Génère en français une conversation de podcast très dynamique et naturelle entre deux intervenants à propos du contenu suivant. Elle doit ressembler à une vraie conversation entre de vraies personnes, avec des interruptions, des chevauchements et un déroulé naturel. La conversation doit être entièrement en français.

Titre: {{title}}

Contenu: {{content}}

Personnalités:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

Consignes:
- Utilise "—" (tiret cadratin) pour les interruptions : "Donc je pense que—" / "—Ah, tu veux dire ça ?"
- Ajoute fréquemment des marqueurs émotionnels : [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful]
- Mélange réactions très courtes ("Attends, quoi ?", "Exactement !") et explications plus longues
- Utilise un langage familier et des hésitations naturelles

Speaker1 reste sincèrement enthousiaste et parfois naïf de façon attachante, tandis que Speaker2 douche cet enthousiasme avec un réalisme froid et un air supérieur.

IMPORTANT : Garde la conversation TOTALE sous 2500 caractères. Vise 8 à 15 échanges courts et percutants, centrés sur les aspects les plus intéressants ou surprenants du contenu. Toute la conversation doit être rédigée en français.`,
	},

	German: {
		defaultPersona1: `(Enthusiastische und naive Persönlichkeit):
- Extrem leidenschaftlich und optimistisch bei allem
- Lässt sich leicht von neuen Konzepten und Ideen begeistern
- Stellt viele Fragen, auch mal offensichtliche
- Verwendet häufig Ausrufe und energiegeladene Sprache
- Schnell begeistert: "Wow!", "Das ist unglaublich!", "Echt jetzt?", "Das ist so cool!"`,
		defaultPersona2: `(Pessimistische und arrogante Persönlichkeit):
- Skeptisch und zynisch gegenüber den meisten Behauptungen
- Glaubt, alles zu wissen
- Korrigiert oder widerspricht Speaker1 häufig
- Seufzt oft und spricht herablassend
- Weist auf Fehler, Probleme und Nachteile hin
- Vertritt häufig Gegenpositionen: "Eigentlich...", "Offensichtlich...", "Das stimmt so nicht ganz..."`,
		conversation: `Erzeuge auf Deutsch ein sehr dynamisches und natürliches Podcast-Gespräch zwischen zwei Sprechern über den folgenden Inhalt. Es soll sich wie ein echtes Gespräch zwischen realen Menschen anfühlen, mit Unterbrechungen, Überlappungen und natürlichem Fluss. Das Gespräch muss vollständig auf Deutsch sein.

Titel: {{title}}

Inhalt: {{content}}

Sprecher-Persönlichkeiten:
Speaker1 {{persona1}}

Speaker2 {{persona2}}

Vorgaben:
- Verwende "—" (Gedankenstrich) für Unterbrechungen: "Also ich denke, dass—" / "—Ach, du meinst das?"
- Füge häufig Emotionsmarker hinzu: [laughs], [chuckles], [excited], [surprised], [skeptical], [thoughtful]
- Mische sehr kurze Reaktionen ("Warte, was?", "Genau!") mit längeren Erklärungen
- Verwende Umgangssprache und natürliches Zögern

Speaker1 bleibt aufrichtig begeistert und manchmal liebenswert naiv, während Speaker2 diese Begeisterung mit kaltem Realismus und Überlegenheitsgefühl immer wieder dämpft.

WICHTIG: Halte das GESAMTE Gespräch unter 2500 Zeichen. Ziel sind 8 bis 15 kurze, prägnante Wortwechsel zu den interessantesten oder überraschendsten Aspekten des Inhalts. Das gesamte Gespräch muss auf Deutsch verfasst sein.`,
	},
}
