// SPDX-License-Identifier: Apache-2.0

package extraction

// SampleText returns a demonstration text with examples of every built-in category.
func SampleText() string {
	return "Hello, my name is John Doe. You can reach me at john.doe@example.com or " +
		"jane.smith@company.co.uk. Please visit our website at https://www.example.com " +
		"or check out our partner site at http://subdomain.example.org/page.\n\n" +
		"For appointments, call (123) 456-7890, 123-456-7890, or 123.456.7890.\n\n" +
		"Payment options include credit card numbers such as 1234 5678 9012 3456 " +
		"and 1234-5678-9012-3456.\n\n" +
		"Meeting times can be scheduled at 14:30 or 2:30 PM.\n\n" +
		"Below are some HTML examples: <p>, <div class=\"example\">, and " +
		"<img src='image.jpg' alt='description'>.\n\n" +
		"Don't forget to follow us on social media: #example, #ThisIsAHashtag.\n\n" +
		"Prices: Our product costs $19.99 and our premium package is $1,234.56.\n"
}
