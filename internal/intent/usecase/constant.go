package usecase

// NoAnswerResponse is returned when the matched intent has no response
// candidates. The tag and confidence are still reported.
const NoAnswerResponse = "Sorry, I don't know how to answer that yet."
