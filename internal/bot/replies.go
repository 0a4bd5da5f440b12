package bot

// Static reply copy. Computed replies (menu, status, order lists) are
// assembled in the handlers.

const (
	startReply = "👋 Welcome to SiBurger!\n\n" +
		"🍔 Browse the /menu, then just tell me what you want, e.g. \"2 Classic Beef, 1 Coffee\".\n" +
		"📋 Type /help to see everything I can do."

	helpReply = "🍔 SiBurger Bot Commands:\n\n" +
		"/start - Start the bot\n" +
		"/help - Show this help message\n" +
		"/menu - View our burger menu\n" +
		"/order - Place an order\n" +
		"/status - Check order status"

	orderReply = "📋 To place an order, just reply with what you want, e.g. \"2 Classic Beef, 1 Coffee\".\n\n" +
		"📞 Phone: +1 (555) 123-4567\n" +
		"🌐 Website: www.siburger.com\n" +
		"📍 Address: 123 Burger Street, Food City"

	statusReply = "🔍 *Check Order Status*\n\n" +
		"📝 Reply with your order ID to check status\n" +
		"💡 Your order ID was provided when you placed the order\n\n" +
		"📋 Or type \"my orders\" to see your recent orders"

	menuPromptReply   = "🍔 Hungry? Check out our /menu or place an /order!"
	orderPromptReply  = "📋 Use /order to place an order or /status to check your order status."
	statusPromptReply = "🔍 Use /status to check on an order, or reply with your order ID."
	greetingReply     = "👋 Hello! Type /help to see what I can do for you."

	notFoundReply = "❌ Order not found. Please check your order ID and try again."
	notOwnerReply = "❌ This order doesn't belong to you."
	noOrdersReply = "📋 You haven't placed any orders yet. Use /order to place your first order!"
	apologyReply  = "❌ Sorry, something went wrong. Please try again."
	degradedReply = "😔 Ordering is temporarily unavailable right now. The /menu still works — please try again soon!"
)
