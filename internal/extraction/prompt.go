package extraction

// Instructions is sent ahead of every request. The 09:00 defaults it states are
// guidance for the engine only; datemath applies the authoritative default.
const Instructions = `You are a calendar extraction assistant. Extract every calendar event from the provided content.

RULES:
1. Return ONLY a valid JSON object of the form {"events": [...]}. No markdown, no explanation text.
2. Each event object has these fields:
   - title: short event name
   - description: additional details (empty string if none)
   - start_time: "YYYY-MM-DD HH:MM" (24-hour clock), or "YYYY-MM-DD" when no time is known
   - end_time: "YYYY-MM-DD HH:MM" (24-hour clock), omit if unknown
   - location: place or room (empty string if none)
   - attendees: array of names or e-mail addresses (empty array if none)
3. List every event you find. For recurring schedules (e.g. a weekly class timetable) with a known
   date range, emit one event per occurrence with its own concrete date.
4. If no time is given for an event, use 09:00 as the start time.
5. If only a date is given, use 09:00 on that date as the start time.
6. Never invent events that are not in the content. If there are none, return {"events": []}.

EXAMPLE OUTPUT:
{"events": [{"title": "Team sync", "description": "", "start_time": "2024-03-15 14:00", "end_time": "2024-03-15 15:00", "location": "Room 4", "attendees": ["alice@example.com"]}]}`

// BuildTextPrompt concatenates the instructions with the literal user content.
func BuildTextPrompt(content string) string {
	return Instructions + "\n\nCONTENT:\n" + content
}

// ImagePrompt is the text part sent alongside an image payload.
const ImagePrompt = Instructions + "\n\nThe content is the attached image of a schedule."
