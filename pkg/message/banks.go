package message

var openers = []string{
	"My dearest,",
	"To my love,",
	"Beautiful soul,",
	"My sunshine,",
	"Hey gorgeous,",
	"My everything,",
	"My sweet love,",
	"To my favorite person,",
	"Hello my love,",
	"My darling,",
	"To the one who holds my heart,",
	"Hey love of my life,",
	"My rock, my heart,",
	"To my forever,",
	"Dearest love,",
	"My joy,",
	"Hey beautiful,",
	"To my one and only,",
	"My heart,",
}

var intros = []string{
	"I picked these just for you.",
	"Here is a little bouquet to carry with you today.",
	"I wanted you to have something beautiful to look at.",
	"These flowers made me think of you.",
	"A few blooms, arranged with you in mind.",
	"I couldn't send you a whole garden, so I started with this.",
	"Every petal here is a small reminder of how I feel.",
	"I hope these bring a little color to your day.",
	"Nothing fancy, just flowers and a full heart.",
	"I saw these and knew they belonged to you.",
	"Consider this a love letter that happens to be in bloom.",
	"Another day, another bouquet, same endless love.",
}

var mornings = []string{
	"I hope your morning is as bright as your smile.",
	"May your coffee be warm and your day be gentle.",
	"Good morning, I was thinking of you the moment I woke up.",
	"Start today knowing someone adores you.",
	"Here's to a morning full of easy moments.",
	"Rise and shine, the day is lucky to have you.",
	"I hope the sun finds you first this morning.",
	"A fresh morning and fresh flowers, both for you.",
}

var evenings = []string{
	"I hope your evening is calm and cozy.",
	"Wherever tonight finds you, I hope you feel loved.",
	"Rest easy tonight, you did wonderfully today.",
	"Here's something soft to end your day with.",
	"As the day winds down, my thoughts wind back to you.",
	"I hope tonight brings you peace and sweet dreams.",
	"The stars have nothing on you this evening.",
	"Kick your feet up, you've earned a gentle night.",
}

var thoughts = []string{
	"You make every moment magical.",
	"Your smile brightens my entire world.",
	"I fall for you more every single day.",
	"Being with you feels like a dream.",
	"You inspire me to be better.",
	"Your laugh is my favorite sound.",
	"Simple moments with you are my favorite memories.",
	"Thank you for being my person.",
	"Every day with you is a gift.",
	"Life is beautiful because of you.",
	"Thank you for loving me the way you do.",
	"I cherish every second we spend together.",
	"You are the best thing that ever happened to me.",
	"Thank you for being my home.",
	"Forever isn't long enough with you.",
	"You're my favorite hello and hardest goodbye.",
	"My love for you grows stronger every day.",
	"I love you to the moon and back.",
	"You mean the world to me.",
	"No one compares to you.",
}

var closings = []string{
	"Can't wait to see you.",
	"Thinking of you always.",
	"Sending you all my love.",
	"You are my world.",
	"Counting down the moments until I see you.",
	"With all my heart.",
	"Until I can hold you again.",
}

var signatures = []string{
	"Yours, always",
	"Forever yours",
	"All my love",
	"With love",
	"Your biggest fan",
	"Yours truly",
}

var subjects = []string{
	"Fresh flowers for my love 💐",
	"A little beauty for a beautiful person",
	"Thinking of you today ✨",
	"Something to make you smile",
	"Just because I love you 🌸",
	"A bouquet just for you 🌹",
	"My daily reminder of my love",
	"To brighten your day ☀️",
	"For my favorite person ❤️",
	"Sending you a little magic ✨",
	"You are on my mind 💭",
	"Flowers for my flower 🌺",
	"Because you deserve beautiful things",
	"Hey beautiful, this is for you",
	"My heart sent this to you",
	"A little surprise for you 🎁",
	"Thinking of you right now",
	"Just a little love note 💌",
	"For the most beautiful person I know",
	"Your daily dose of love",
}

// Banks used by Classic.

var admirations = []string{
	"you make every moment magical.",
	"your smile brightens my entire world.",
	"I fall for you more every single day.",
	"you are the most beautiful person I know.",
	"being with you feels like a dream.",
	"you inspire me to be better.",
	"your kindness radiates in everything you do.",
	"I am constantly in awe of your strength.",
	"you have such a beautiful heart.",
	"your laugh is my favorite sound.",
	"you make life feel so vibrant and full.",
	"your presence makes everything better.",
	"just seeing you makes my day.",
	"you are pure magic.",
	"you are my dream come true.",
}

var gratitudes = []string{
	"Thank you for being my person.",
	"I'm so grateful you're in my life.",
	"Every day with you is a gift.",
	"You make my heart so full.",
	"I appreciate you more than words can say.",
	"I'm the luckiest person to have you.",
	"Thank you for being my adventure partner.",
	"Thank you for just being you.",
	"You enrich my life in every way.",
	"My life is infinitely better with you in it.",
}

var loves = []string{
	"I love you endlessly.",
	"You have my whole heart.",
	"My heart beats for you.",
	"I love you more than yesterday.",
	"You are my forever and always.",
	"Loving you is the best part of my life.",
	"You are the love of my life.",
	"I adore you, completely.",
	"My heart belongs to you, always.",
	"Only you, forever.",
}
