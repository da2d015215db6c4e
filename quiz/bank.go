package quiz

import "github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"

// DefaultBank returns the ten built-in questions in presentation order.
func DefaultBank() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			Prompt: "What should you do if you receive an email asking for your password?",
			Options: []string{
				"Reply with your password",
				"Delete the email",
				"Report the email as phishing",
				"Ignore it",
			},
			Correct:     2,
			Explanation: "You should never share your password via email. Reporting phishing emails helps protect others.",
		},
		{
			Prompt:      "True or False: Using the same password for multiple accounts is a good security practice.",
			Options:     []string{"True", "False"},
			Correct:     1,
			Explanation: "Using unique passwords for each account limits damage if one account is compromised.",
		},
		{
			Prompt: "Which of these is the strongest password?",
			Options: []string{
				"password123",
				"P@ssw0rd!",
				"CorrectHorseBatteryStaple",
				"12345678",
			},
			Correct:     2,
			Explanation: "Long passphrases are more secure than complex but short passwords.",
		},
		{
			Prompt: "What does HTTPS in a website URL indicate?",
			Options: []string{
				"The site has high traffic",
				"The connection is encrypted",
				"The site is government-approved",
				"The site is free to use",
			},
			Correct:     1,
			Explanation: "HTTPS ensures your connection to the website is encrypted and secure.",
		},
		{
			Prompt: "What should you do before connecting to public Wi-Fi?",
			Options: []string{
				"Disable your firewall",
				"Use a VPN",
				"Share your location",
				"Log in to all your accounts",
			},
			Correct:     1,
			Explanation: "A VPN encrypts your traffic on public networks.",
		},
		{
			Prompt: "How often should you update your software?",
			Options: []string{
				"Only when it stops working",
				"When the manufacturer releases updates",
				"Never, updates break things",
				"Once every 5 years",
			},
			Correct:     1,
			Explanation: "Software updates often include critical security patches.",
		},
		{
			Prompt: "What is two-factor authentication?",
			Options: []string{
				"Using two different passwords",
				"Verifying identity with two different methods",
				"Having two user accounts",
				"Logging in from two devices",
			},
			Correct:     1,
			Explanation: "2FA adds an extra layer of security beyond just a password.",
		},
		{
			Prompt: "Where should you store your passwords?",
			Options: []string{
				"In a text file on your desktop",
				"In your email inbox",
				"In a password manager",
				"On a sticky note under your keyboard",
			},
			Correct:     2,
			Explanation: "Password managers securely store and generate strong passwords.",
		},
		{
			Prompt: "What is phishing?",
			Options: []string{
				"A fishing sport",
				"A type of malware",
				"A fraudulent attempt to obtain sensitive information",
				"A hardware failure",
			},
			Correct:     2,
			Explanation: "Phishing uses deception to trick users into revealing sensitive data.",
		},
		{
			Prompt:      "True or False: You should click on links in emails from unknown senders.",
			Options:     []string{"True", "False"},
			Correct:     1,
			Explanation: "Links in suspicious emails may lead to malicious websites.",
		},
	}
}
