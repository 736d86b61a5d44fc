/*
Package templating implements the message template engine behind the console's
template editor: a registry of named placeholders, a validator that checks a
template body against that registry, and a renderer that produces an HTML
preview by substituting bound values and applying a small set of inline markup
rules.

Placeholders are written as {{token}} inside the template body. Tokens are
case-sensitive and must match a declaration id exactly; whitespace around the
token is ignored. The engine keeps no state between calls — validation and
rendering are pure functions over the body, the declarations, and the registry
passed in, so concurrent use needs no coordination.
*/
package templating
